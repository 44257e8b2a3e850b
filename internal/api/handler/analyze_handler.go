// Package handler HTTP请求的解析与响应编排，业务逻辑全部委托给分析引擎。
package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"ats-analyzer-go/internal/config"
	"ats-analyzer-go/internal/engine"
	"ats-analyzer-go/internal/extractor"
	"ats-analyzer-go/internal/logger"
	"ats-analyzer-go/internal/types"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// AnalyzeHandler 简历分析处理器
type AnalyzeHandler struct {
	cfg    *config.Config
	engine *engine.Engine
}

// NewAnalyzeHandler 创建简历分析处理器
func NewAnalyzeHandler(cfg *config.Config, eng *engine.Engine) *AnalyzeHandler {
	return &AnalyzeHandler{
		cfg:    cfg,
		engine: eng,
	}
}

// HandleAnalyze 处理简历分析请求
// multipart表单：resume 必填（PDF/DOCX/DOC/TXT），
// job_description 文件或 job_description_text 文本二选一、可不填。
// 分析全程在内存中完成，不落盘、不持久化任何文档内容。
func (h *AnalyzeHandler) HandleAnalyze(c context.Context, ctx *app.RequestContext) {
	fileHeader, err := ctx.FormFile("resume")
	if err != nil {
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "Resume file is required"})
		return
	}
	if fileHeader.Filename == "" {
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "No resume file selected"})
		return
	}

	resume, errMsg, status := h.readUpload(fileHeader, types.RoleResume)
	if errMsg != "" {
		ctx.JSON(status, utils.H{"error": errMsg})
		return
	}

	jd, errMsg, status := h.readJobDescription(ctx)
	if errMsg != "" {
		ctx.JSON(status, utils.H{"error": errMsg})
		return
	}

	result, err := h.engine.Analyze(c, resume, jd)
	if err != nil {
		h.writeAnalyzeError(ctx, err, resume.Filename)
		return
	}

	ctx.JSON(consts.StatusOK, result)
}

// readUpload 读取并校验一个上传文件
// 返回的错误信息为空表示成功
func (h *AnalyzeHandler) readUpload(fileHeader *multipart.FileHeader, role types.DocumentRole) (*types.Document, string, int) {
	label := "resume"
	if role == types.RoleJobDescription {
		label = "job description"
	}

	if fileHeader.Size > h.cfg.Server.MaxUploadBytes() {
		msg := fmt.Sprintf("The %s file exceeds the %dMB size limit", label, h.cfg.Server.MaxUploadMB)
		return nil, msg, consts.StatusRequestEntityTooLarge
	}

	fileType, err := extractor.FileTypeFromFilename(fileHeader.Filename)
	if err != nil {
		msg := fmt.Sprintf("Invalid %s file type. Allowed: PDF, DOCX, DOC, TXT", label)
		return nil, msg, consts.StatusBadRequest
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("打开上传文件失败")
		return nil, "Failed to read uploaded file", consts.StatusInternalServerError
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("读取上传文件内容失败")
		return nil, "Failed to read uploaded file", consts.StatusInternalServerError
	}

	return &types.Document{
		Data:     data,
		Type:     fileType,
		Role:     role,
		Filename: fileHeader.Filename,
	}, "", 0
}

// readJobDescription 读取可选的职位描述
// 优先使用 job_description 文件字段，其次是 job_description_text 纯文本字段；
// 两者都缺省时返回 nil，分析将跳过JD匹配
func (h *AnalyzeHandler) readJobDescription(ctx *app.RequestContext) (*types.Document, string, int) {
	if fileHeader, err := ctx.FormFile("job_description"); err == nil && fileHeader.Filename != "" {
		return h.readUpload(fileHeader, types.RoleJobDescription)
	}

	if text := strings.TrimSpace(ctx.PostForm("job_description_text")); text != "" {
		return &types.Document{
			Data:     []byte(text),
			Type:     types.FileTypeTXT,
			Role:     types.RoleJobDescription,
			Filename: "job_description_text",
		}, "", 0
	}

	return nil, "", 0
}

// writeAnalyzeError 把引擎错误映射为HTTP响应
// 文档相关的错误都是调用方可修复的，返回400；其余一律500且不泄露内部细节
func (h *AnalyzeHandler) writeAnalyzeError(ctx *app.RequestContext, err error, filename string) {
	var extractErr *extractor.ExtractError

	switch {
	case errors.Is(err, engine.ErrResumeTooShort), errors.Is(err, extractor.ErrEmptyDocument):
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "Resume appears to be empty or too short"})
	case errors.Is(err, extractor.ErrUnsupportedFormat):
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "Unsupported document format. Allowed: PDF, DOCX, DOC, TXT"})
	case errors.Is(err, extractor.ErrExtractionFailed):
		detail := "the document could not be parsed"
		if errors.As(err, &extractErr) && extractErr.Detail != "" {
			detail = extractErr.Detail
		}
		logger.Warn().Err(err).Str("filename", filename).Msg("文档提取失败")
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "Failed to extract text: " + detail})
	default:
		logger.Error().Err(err).Str("filename", filename).Msg("简历分析失败")
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "Internal server error"})
	}
}
