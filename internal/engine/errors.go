package engine

import "errors"

// ErrResumeTooShort 提取出的简历文本为空或过短，无法进行有意义的分析
var ErrResumeTooShort = errors.New("简历内容为空或过短")
