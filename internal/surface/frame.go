package surface

import "fmt"

// Heading is drawn above the readouts.
const Heading = "OSStats"

// Line is one row of text in a Frame.
type Line struct {
	Text   string
	Level  Level
	Tinted bool // false means draw in the default text color
}

// Frame is everything a host draws for one paint.
type Frame struct {
	Heading string
	Lines   []Line
}

// Render builds the frame for a snapshot: RAM percent, MiB totals, CPU percent.
func Render(s Snapshot) Frame {
	return Frame{
		Heading: Heading,
		Lines: []Line{
			{
				Text:   fmt.Sprintf("RAM: %.2f%%", s.UsedMemoryPercent),
				Level:  Classify(s.UsedMemoryPercent),
				Tinted: true,
			},
			{
				Text: fmt.Sprintf("%.2f/%.2f MiB", s.UsedMemoryMiB, s.TotalMemoryMiB),
			},
			{
				Text:   fmt.Sprintf("CPU: %.2f%%", s.CPUPercent),
				Level:  Classify(s.CPUPercent),
				Tinted: true,
			},
		},
	}
}

// Text returns the frame as plain lines, heading first.
func (f Frame) Text() string {
	out := f.Heading
	for _, l := range f.Lines {
		out += "\n" + l.Text
	}
	return out
}
