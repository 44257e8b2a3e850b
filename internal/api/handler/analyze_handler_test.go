package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"testing"

	"ats-analyzer-go/internal/api/handler"
	"ats-analyzer-go/internal/api/router"
	"ats-analyzer-go/internal/config"
	"ats-analyzer-go/internal/dictionary"
	"ats-analyzer-go/internal/engine"
	"ats-analyzer-go/internal/extractor"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResumeText = `Alex Chen
alex@example.com

Summary
Backend engineer with six years of experience building services for data products.

Skills
Python, Go, SQL, PostgreSQL, Docker, Kubernetes, AWS, Terraform, Redis, React

Experience
Software Engineer at Example Corp
- Developed streaming pipelines and led the migration to containerized deployments
- Optimized database queries and improved API latency across the board

Education
B.S. in Computer Science, State University, graduated 2018 with a focus on systems`

// newTestServer 装配一个完整的测试服务器（ledong解析器避免外部依赖）
func newTestServer(t *testing.T, apiKey string) *server.Hertz {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Extractor.PDFParser = "ledong"
	cfg.Server.APIKey = apiKey

	dict, err := dictionary.Default()
	require.NoError(t, err, "加载内置词典失败")

	docExtractor, err := extractor.New(context.Background(), cfg.Extractor)
	require.NoError(t, err, "初始化提取器失败")

	analyzeHandler := handler.NewAnalyzeHandler(cfg, engine.NewEngine(docExtractor, dict, cfg.Analyzer))

	h := server.Default()
	router.RegisterRoutes(h, cfg, analyzeHandler)
	return h
}

// multipartForm 构造multipart请求体：files为字段名到[文件名,内容]，fields为普通文本字段
func multipartForm(t *testing.T, files map[string][2]string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for field, file := range files {
		part, err := writer.CreateFormFile(field, file[0])
		require.NoError(t, err)
		_, err = part.Write([]byte(file[1]))
		require.NoError(t, err)
	}
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func postAnalyze(h *server.Hertz, body *bytes.Buffer, contentType string, headers ...ut.Header) *ut.ResponseRecorder {
	all := append([]ut.Header{{Key: "Content-Type", Value: contentType}}, headers...)
	return ut.PerformRequest(h.Engine, "POST", "/api/v1/analyze",
		&ut.Body{Body: body, Len: body.Len()}, all...)
}

// TestHandleAnalyzeResumeOnly 验证只传简历的完整请求
func TestHandleAnalyzeResumeOnly(t *testing.T) {
	h := newTestServer(t, "")

	body, contentType := multipartForm(t, map[string][2]string{
		"resume": {"resume.txt", sampleResumeText},
	}, nil)
	resp := postAnalyze(h, body, contentType)

	require.Equal(t, http.StatusOK, resp.Code, "响应体: %s", resp.Body.String())

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))

	score, ok := result["ats_score"].(float64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 100.0)

	// 未提供JD时相关字段整体缺省
	assert.NotContains(t, result, "jd_match_score")
	assert.NotContains(t, result, "jd_analysis")

	sections, ok := result["sections"].(map[string]interface{})
	require.True(t, ok)
	assert.Len(t, sections, 5)
	assert.Contains(t, result, "recommendations")
	assert.Contains(t, result, "summary")
}

// TestHandleAnalyzeWithJDText 验证通过文本字段提供JD
func TestHandleAnalyzeWithJDText(t *testing.T) {
	h := newTestServer(t, "")

	body, contentType := multipartForm(t, map[string][2]string{
		"resume": {"resume.txt", sampleResumeText},
	}, map[string]string{
		"job_description_text": "We need a backend engineer with Python, Docker, Kubernetes and Ansible experience to build data services.",
	})
	resp := postAnalyze(h, body, contentType)

	require.Equal(t, http.StatusOK, resp.Code, "响应体: %s", resp.Body.String())

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))

	assert.Contains(t, result, "jd_match_score")
	jdAnalysis, ok := result["jd_analysis"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, jdAnalysis, "tfidf_similarity")
	assert.Contains(t, jdAnalysis, "missing_skills")
}

// TestHandleAnalyzeWithJDFile 验证通过文件字段提供JD
func TestHandleAnalyzeWithJDFile(t *testing.T) {
	h := newTestServer(t, "")

	body, contentType := multipartForm(t, map[string][2]string{
		"resume":          {"resume.txt", sampleResumeText},
		"job_description": {"jd.txt", "Hiring a platform engineer: Go, Terraform, AWS and strong PostgreSQL knowledge required."},
	}, nil)
	resp := postAnalyze(h, body, contentType)

	require.Equal(t, http.StatusOK, resp.Code, "响应体: %s", resp.Body.String())

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	assert.Contains(t, result, "jd_match_score")
}

// TestHandleAnalyzeMissingResume 验证缺少简历文件时返回400
func TestHandleAnalyzeMissingResume(t *testing.T) {
	h := newTestServer(t, "")

	body, contentType := multipartForm(t, nil, map[string]string{"other": "field"})
	resp := postAnalyze(h, body, contentType)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "Resume file is required")
}

// TestHandleAnalyzeInvalidFileType 验证不支持的扩展名返回400
func TestHandleAnalyzeInvalidFileType(t *testing.T) {
	h := newTestServer(t, "")

	body, contentType := multipartForm(t, map[string][2]string{
		"resume": {"resume.exe", sampleResumeText},
	}, nil)
	resp := postAnalyze(h, body, contentType)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid resume file type")
}

// TestHandleAnalyzeTooShortResume 验证过短简历返回400
func TestHandleAnalyzeTooShortResume(t *testing.T) {
	h := newTestServer(t, "")

	body, contentType := multipartForm(t, map[string][2]string{
		"resume": {"resume.txt", "too short to analyze"},
	}, nil)
	resp := postAnalyze(h, body, contentType)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "empty or too short")
}

// TestHandleAnalyzeCorruptPDF 验证损坏的PDF返回400而不是500
func TestHandleAnalyzeCorruptPDF(t *testing.T) {
	h := newTestServer(t, "")

	body, contentType := multipartForm(t, map[string][2]string{
		"resume": {"resume.pdf", "this is definitely not a pdf file but it is long enough to pass nothing"},
	}, nil)
	resp := postAnalyze(h, body, contentType)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "error")
}

// TestHandleAnalyzeAPIKey 验证配置了API密钥后的鉴权行为
func TestHandleAnalyzeAPIKey(t *testing.T) {
	h := newTestServer(t, "secret-key")

	body, contentType := multipartForm(t, map[string][2]string{
		"resume": {"resume.txt", sampleResumeText},
	}, nil)

	// 无密钥
	resp := postAnalyze(h, body, contentType)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	// 错误密钥
	body2, contentType2 := multipartForm(t, map[string][2]string{
		"resume": {"resume.txt", sampleResumeText},
	}, nil)
	resp = postAnalyze(h, body2, contentType2, ut.Header{Key: "X-API-Key", Value: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	// 正确密钥
	body3, contentType3 := multipartForm(t, map[string][2]string{
		"resume": {"resume.txt", sampleResumeText},
	}, nil)
	resp = postAnalyze(h, body3, contentType3, ut.Header{Key: "X-API-Key", Value: "secret-key"})
	assert.Equal(t, http.StatusOK, resp.Code)

	// 健康检查不受鉴权影响
	health := ut.PerformRequest(h.Engine, "GET", "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, health.Code)
}

// TestHealthAndRootEndpoints 验证健康检查与根路径
func TestHealthAndRootEndpoints(t *testing.T) {
	h := newTestServer(t, "")

	health := ut.PerformRequest(h.Engine, "GET", "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, health.Code)
	assert.Contains(t, health.Body.String(), "healthy")

	root := ut.PerformRequest(h.Engine, "GET", "/", nil)
	assert.Equal(t, http.StatusOK, root.Code)
	assert.Contains(t, root.Body.String(), "ATS Resume Analyzer API")
}

// TestRequestIDHeader 验证每个响应都带X-Request-ID
func TestRequestIDHeader(t *testing.T) {
	h := newTestServer(t, "")

	resp := ut.PerformRequest(h.Engine, "GET", "/api/v1/health", nil)
	assert.NotEmpty(t, resp.Header().Get("X-Request-ID"))

	echo := ut.PerformRequest(h.Engine, "GET", "/api/v1/health", nil,
		ut.Header{Key: "X-Request-ID", Value: "req-123"})
	assert.Equal(t, "req-123", echo.Header().Get("X-Request-ID"))
}
