package xgrep

import (
	"bufio"
	"errors"
	"io"
)

// readBufferSize 是读缓冲大小；更长的行会被拼接，不会截断。
const readBufferSize = 128 << 10

// lineReader 逐行读取，去掉行尾的 '\n'，保留 '\r'。
// 返回的切片在下一次 next 调用前有效。
type lineReader struct {
	br   *bufio.Reader
	long []byte
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{br: bufio.NewReaderSize(r, readBufferSize)}
}

// next 返回下一行。没有换行符的末行照常返回，之后返回 io.EOF。
func (r *lineReader) next() ([]byte, error) {
	r.long = r.long[:0]
	for {
		chunk, err := r.br.ReadSlice('\n')
		if errors.Is(err, bufio.ErrBufferFull) {
			r.long = append(r.long, chunk...)
			continue
		}
		line := chunk
		if len(r.long) > 0 {
			r.long = append(r.long, chunk...)
			line = r.long
		}
		switch {
		case err == nil:
			return line[:len(line)-1], nil
		case errors.Is(err, io.EOF):
			if len(line) == 0 {
				return nil, io.EOF
			}
			return line, nil
		default:
			return nil, err
		}
	}
}
