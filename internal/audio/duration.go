package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/tcolgate/mp3"
)

// MP3Duration возвращает длительность MP3-потока в секундах,
// суммируя длительности отдельных фреймов.
func MP3Duration(r io.Reader) (float64, error) {
	decoder := mp3.NewDecoder(r)

	var (
		frame   mp3.Frame
		skipped int
		total   float64
	)
	for {
		if err := decoder.Decode(&frame, &skipped); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return 0, fmt.Errorf("decoding mp3 frame: %w", err)
		}
		total += frame.Duration().Seconds()
	}

	return total, nil
}
