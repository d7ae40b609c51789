package plot

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

var fontSource = sync.OnceValues(func() (*text.FontSource, error) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("plot: load Go Regular: %w", err)
	}
	return src, nil
})

func fontFace(sizePx float64) (text.Face, error) {
	src, err := fontSource()
	if err != nil {
		return nil, err
	}
	return src.Face(sizePx), nil
}
