package utils

import (
	"errors"
	"net/http"

	"healthcamp-service/internal/pkg/constvars"
	"healthcamp-service/internal/pkg/dto/responses"
	"healthcamp-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildPaginationResponse(totalRecords, page, limit int64) responses.Pagination {
	totalPages := TotalPages(totalRecords, limit)
	return responses.Pagination{
		TotalRecords: totalRecords,
		TotalPages:   totalPages,
		CurrentPage:  page,
		Limit:        limit,
		HasNext:      page < totalPages,
		HasPrevious:  page > 1,
	}
}

// BuildJSONResponse writes data as is, for the routes without an envelope.
// The body is encoded before the status goes out so that an encoding
// failure can still be answered with a 500.
func BuildJSONResponse(log *zap.Logger, w http.ResponseWriter, code int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		BuildErrorResponse(log, w, exceptions.ErrCannotMarshalJSON(err))
		return
	}
	writeJSON(w, code, body)
}

func BuildSuccessResponse(log *zap.Logger, w http.ResponseWriter, code int, data interface{}) {
	body, err := json.Marshal(responses.ResponseDTO{
		Status: constvars.ResponseSuccess,
		Data:   data,
	})
	if err != nil {
		BuildEnvelopedErrorResponse(log, w, exceptions.ErrCannotMarshalJSON(err))
		return
	}
	writeJSON(w, code, body)
}

func writeJSON(w http.ResponseWriter, code int, body []byte) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	w.Write(append(body, '\n'))
}

func BuildTextResponse(w http.ResponseWriter, code int, text string) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextPlainCharsetUTF8)
	w.WriteHeader(code)
	w.Write([]byte(text))
}

// BuildErrorResponse writes {"error": message}.
func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code, clientMessage := resolveError(log, err)
	body, _ := json.Marshal(responses.ErrorDTO{Error: clientMessage})
	writeJSON(w, code, body)
}

// BuildEnvelopedErrorResponse writes {"status": "error", "error": message}.
func BuildEnvelopedErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code, clientMessage := resolveError(log, err)
	body, _ := json.Marshal(responses.ErrorDTO{
		Status: constvars.ResponseError,
		Error:  clientMessage,
	})
	writeJSON(w, code, body)
}

func resolveError(log *zap.Logger, err error) (int, string) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication
	if err != nil {
		clientMessage = err.Error()
	}

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		log.Error(customErr.DevMessage,
			zap.Int(constvars.LoggingStatusCodeKey, code),
			zap.Any("location", map[string]interface{}{
				"file":          customErr.Location.File,
				"line":          customErr.Location.Line,
				"function_name": customErr.Location.FunctionName,
			}),
		)
	} else if err != nil {
		log.Error(err.Error(), zap.Int(constvars.LoggingStatusCodeKey, code))
	}

	return code, clientMessage
}
