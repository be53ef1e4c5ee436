package http

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/localization-service/internal/domain/dto"
	"github.com/guttosm/localization-service/internal/i18n"
	"github.com/guttosm/localization-service/internal/middleware"
)

// Response envelope pools. Every handler response goes through one of these,
// so pooling the envelopes keeps allocations off the hot path.
var (
	successPool = sync.Pool{New: func() interface{} { return &dto.SuccessResponse{} }}
	errorPool   = sync.Pool{New: func() interface{} { return &dto.ErrorResponse{} }}
)

func borrowSuccess() *dto.SuccessResponse {
	resp := successPool.Get().(*dto.SuccessResponse)
	resp.Timestamp = time.Now()
	return resp
}

func releaseSuccess(resp *dto.SuccessResponse) {
	*resp = dto.SuccessResponse{}
	successPool.Put(resp)
}

func borrowError() *dto.ErrorResponse {
	resp := errorPool.Get().(*dto.ErrorResponse)
	resp.Timestamp = time.Now()
	return resp
}

func releaseError(resp *dto.ErrorResponse) {
	*resp = dto.ErrorResponse{}
	errorPool.Put(resp)
}

// RequestBuilder binds request bodies onto typed DTOs.
type RequestBuilder struct {
	c *gin.Context
}

// NewRequestBuilder creates a request builder for the given context.
func NewRequestBuilder(c *gin.Context) *RequestBuilder {
	return &RequestBuilder{c: c}
}

// Bind unmarshals the JSON request body into v.
func (b *RequestBuilder) Bind(v interface{}) error {
	return b.c.ShouldBindJSON(v)
}

// UnmarshalFromReader decodes JSON from an io.Reader into a fresh T.
func UnmarshalFromReader[T any](reader io.Reader) (*T, error) {
	var v T
	if err := json.NewDecoder(reader).Decode(&v); err != nil {
		return nil, err
	}
	return &v, nil
}

// ResponseBuilder writes the standard success/error envelopes, stamping each
// with the request ID and a timestamp.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends a success envelope with the given status and payload.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	resp := borrowSuccess()
	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)

	// Gin serializes synchronously, so the envelope can go back to the pool
	// as soon as JSON returns.
	b.c.JSON(statusCode, resp)
	releaseSuccess(resp)
}

// SuccessOK sends a 200 OK success envelope.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated sends a 201 Created success envelope.
func (b *ResponseBuilder) SuccessCreated(data interface{}) {
	b.Success(http.StatusCreated, data)
}

// Error sends an error envelope whose message is the i18n translation of
// messageKey in the request's locale, and aborts the handler chain.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c))
	b.writeError(statusCode, message, err)
}

// ErrorWithMessage sends an error envelope with a literal message.
func (b *ResponseBuilder) ErrorWithMessage(statusCode int, message string, err error) {
	b.writeError(statusCode, message, err)
}

func (b *ResponseBuilder) writeError(statusCode int, message string, err error) {
	resp := borrowError()
	resp.Error = dto.ErrCodeFromStatus(statusCode)
	resp.Message = message
	resp.RequestID = middleware.GetRequestID(b.c)

	// Attach the cause so the error handler middleware logs it.
	if err != nil {
		_ = b.c.Error(err)
	}

	b.c.AbortWithStatusJSON(statusCode, resp)
	releaseError(resp)
}

// BuildRequest binds the request body into a fresh T.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := NewRequestBuilder(c).Bind(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// Validator is implemented by request DTOs that carry their own validation.
type Validator interface {
	Validate() error
}

// BuildRequestAndValidate binds the request body and, when the DTO implements
// Validator, runs its validation.
func BuildRequestAndValidate[T any](c *gin.Context) (*T, error) {
	req, err := BuildRequest[T](c)
	if err != nil {
		return nil, err
	}
	if v, ok := any(req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return req, nil
}
