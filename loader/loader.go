// Package loader 从CSV文件加载历史行情数据并产出领域实体。
// 数据文件按时间升序排列, 时间范围过滤为闭区间。
package loader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-gotop/wire/entity"
)

var (
	// ErrBadRow 数据行格式错误
	ErrBadRow = errors.New("bad csv row")
	// ErrBadHeader 表头缺少必需列
	ErrBadHeader = errors.New("bad csv header")
)

// readRows 逐行读取CSV文件, 表头行单独读出, 行间检查ctx取消。
// fn收到的line是文件内的行号, 表头为第1行。
func readRows(ctx context.Context, path string, fn func(line int, header, record []string) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	r := csv.NewReader(file)

	// 读取 csv 文件中的表头
	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadHeader, err)
	}

	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		record, err := r.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("%w %d: %v", ErrBadRow, line+1, err)
		}
		line++
		if err := fn(line, header, record); err != nil {
			return err
		}
	}
	return nil
}

func badRow(line int, column string, cause interface{}) error {
	return fmt.Errorf("%w %d: column %s: %v", ErrBadRow, line, column, cause)
}

// requireColumns 校验表头包含全部必需列。
func requireColumns(header []string, required ...string) error {
	for _, want := range required {
		found := false
		for _, h := range header {
			if h == want {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: missing column %s", ErrBadHeader, want)
		}
	}
	return nil
}

func parseTimestamp(layout, value string) (entity.UnixNanos, error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return 0, err
	}
	return entity.NanosFromTime(t), nil
}
