package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
)

// ScanlineStats counts the work done for a single row
type ScanlineStats struct {
	Pixels  int // Pixels written
	Samples int // Camera rays sampled
	Rays    int // Rays traced, including scattered rays
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Scanlines int           // Rows completed
	Pixels    int           // Total number of pixels rendered
	Samples   int           // Total number of camera samples
	Rays      int           // Total rays traced
	Workers   int           // Parallel scanline workers
	Elapsed   time.Duration // Wall clock time of the render
}

// Add merges one scanline's counts into the totals
func (s *RenderStats) Add(line ScanlineStats) {
	s.Scanlines++
	s.Pixels += line.Pixels
	s.Samples += line.Samples
	s.Rays += line.Rays
}

// AverageSamples returns the mean camera samples per pixel
func (s RenderStats) AverageSamples() float64 {
	if s.Pixels == 0 {
		return 0
	}
	return float64(s.Samples) / float64(s.Pixels)
}

// RaysPerSecond returns the tracing throughput
func (s RenderStats) RaysPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Rays) / s.Elapsed.Seconds()
}

// Table renders the stats as a text table for logging
func (s RenderStats) Table() string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Workers", "Scanlines", "Pixels", "Samples/pixel", "Rays", "Rays/sec"})
	table.Append([]string{
		fmt.Sprintf("%d", s.Workers),
		fmt.Sprintf("%d", s.Scanlines),
		fmt.Sprintf("%d", s.Pixels),
		fmt.Sprintf("%.1f", s.AverageSamples()),
		fmt.Sprintf("%d", s.Rays),
		fmt.Sprintf("%.0f", s.RaysPerSecond()),
	})
	table.SetFooter([]string{"", "", "", "", "TOTAL", s.Elapsed.String()})
	table.Render()

	return buf.String()
}
