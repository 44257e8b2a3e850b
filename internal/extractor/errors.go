package extractor

import (
	"errors"
	"fmt"
)

// 定义基础错误类型
var (
	ErrUnsupportedFormat = errors.New("不支持的文件类型")
	ErrExtractionFailed  = errors.New("文档内容提取失败")
	ErrEmptyDocument     = errors.New("文档内容为空")
)

// ExtractError 包含详细上下文的提取错误
type ExtractError struct {
	Filename string
	Op       string
	BaseErr  error
	Detail   string
}

func (e *ExtractError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (操作:%s, 文件:%s): %s", e.BaseErr, e.Op, e.Filename, e.Detail)
	}
	return fmt.Sprintf("%s (操作:%s, 文件:%s)", e.BaseErr, e.Op, e.Filename)
}

func (e *ExtractError) Unwrap() error {
	return e.BaseErr
}

// Is 实现 errors.Is 接口以支持错误比较
func (e *ExtractError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// 错误构造函数
func NewUnsupportedFormatError(filename, detail string) error {
	return &ExtractError{
		Filename: filename,
		Op:       "detect",
		BaseErr:  ErrUnsupportedFormat,
		Detail:   detail,
	}
}

func NewExtractionError(filename, detail string) error {
	return &ExtractError{
		Filename: filename,
		Op:       "extract",
		BaseErr:  ErrExtractionFailed,
		Detail:   detail,
	}
}

func NewEmptyDocumentError(filename, detail string) error {
	return &ExtractError{
		Filename: filename,
		Op:       "extract",
		BaseErr:  ErrEmptyDocument,
		Detail:   detail,
	}
}
