package program

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// maxLineBytes bounds a single input line. Lines are owned values; anything
// beyond this is almost certainly binary input.
const maxLineBytes = 1 << 20

// Stats summarizes one execution for trace logging.
type Stats struct {
	LinesRead    int
	LinesEmitted int
}

// Execute streams src through the program one line at a time, writing every
// surviving value to sink in emission order. Processing is strictly
// sequential: line i+1 is never read before line i has its verdict, since
// atom state must observe lines in arrival order. The first read or write
// failure aborts the run; lines already written stay written.
func (p *Program) Execute(ctx context.Context, src io.Reader, sink io.Writer) (Stats, error) {
	var stats Stats

	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	w := bufio.NewWriter(sink)

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		stats.LinesRead++
		out, ok := p.run(stats.LinesRead, sc.Text())
		if !ok {
			continue
		}
		if _, err := w.WriteString(out); err != nil {
			return stats, fmt.Errorf("write output: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return stats, fmt.Errorf("write output: %w", err)
		}
		stats.LinesEmitted++
	}
	if err := sc.Err(); err != nil {
		return stats, fmt.Errorf("read input: %w", err)
	}
	if err := w.Flush(); err != nil {
		return stats, fmt.Errorf("write output: %w", err)
	}
	return stats, nil
}
