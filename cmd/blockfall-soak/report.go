package main

import (
	"io"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Games int
	Seed  uint64

	// Results
	Pieces    int
	Lines     int
	Score     int
	MaxLevel  int
	TotalTime time.Duration
	DropTime  Stats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Soak Report

## Configuration
- **Games:** {{.Games}}
- **Seed:** {{.Seed}}

## Gameplay Totals
- **Pieces Locked:** {{.Pieces}}
- **Lines Cleared:** {{.Lines}}
- **Score:** {{.Score}}
- **Highest Level:** {{.MaxLevel}}

## Performance
- **Total Time:** {{.TotalTime}}
- **Hard Drop:**
  - **Avg:** {{.DropTime.Avg}}
  - **Min:** {{.DropTime.Min}}
  - **Max:** {{.DropTime.Max}}
`

	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
