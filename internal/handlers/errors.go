package handlers

import (
	"errors"
	"net/http"

	"farm_manager/internal/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

type messageID int

const (
	msgInternal messageID = iota
	msgInvalidRequest
	msgNotFound
	msgInsufficientStock
	msgConcurrentUpdate
	msgReferenced
	msgDuplicate
	msgForbidden
	msgUnauthenticated
	msgInvalidCredentials
	msgOrderCreation
	msgDeleted
	msgLoggedOut
	msgPasswordChanged
)

// Supported response languages. Vietnamese is the fallback.
var supported = []language.Tag{language.Vietnamese, language.English}

var matcher = language.NewMatcher(supported)

var catalog = map[messageID][2]string{
	msgInternal:           {"Đã xảy ra lỗi", "an error occurred"},
	msgInvalidRequest:     {"Dữ liệu không hợp lệ", "invalid request"},
	msgNotFound:           {"Không tìm thấy dữ liệu", "record not found"},
	msgInsufficientStock:  {"Số lượng xuất vượt quá tồn kho", "requested export exceeds stock on hand"},
	msgConcurrentUpdate:   {"Dữ liệu vừa được thay đổi, vui lòng thử lại", "record was modified concurrently, please retry"},
	msgReferenced:         {"Dữ liệu đang được sử dụng, không thể xóa", "record is still referenced by other data"},
	msgDuplicate:          {"Dữ liệu đã tồn tại", "record already exists"},
	msgForbidden:          {"Không có quyền thực hiện", "permission denied"},
	msgUnauthenticated:    {"Vui lòng đăng nhập", "authentication required"},
	msgInvalidCredentials: {"Thông tin đăng nhập không đúng", "invalid login credentials"},
	msgOrderCreation:      {"Tạo đơn hàng thất bại", "order creation failed"},
	msgDeleted:            {"Đã xóa", "deleted"},
	msgLoggedOut:          {"Đã đăng xuất", "logged out"},
	msgPasswordChanged:    {"Đã đổi mật khẩu", "password changed"},
}

// localize picks the message text for the request's Accept-Language.
func localize(c *gin.Context, id messageID) string {
	tags, _, _ := language.ParseAcceptLanguage(c.GetHeader("Accept-Language"))
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		index = 0
	}
	return catalog[id][index]
}

// classify maps a domain error onto an HTTP status and message.
func classify(err error) (int, messageID) {
	switch {
	case models.IsValidation(err):
		return http.StatusBadRequest, msgInvalidRequest
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound, msgNotFound
	case errors.Is(err, models.ErrInsufficientStock):
		return http.StatusUnprocessableEntity, msgInsufficientStock
	case errors.Is(err, models.ErrConcurrentUpdate):
		return http.StatusConflict, msgConcurrentUpdate
	case errors.Is(err, models.ErrReferenced):
		return http.StatusConflict, msgReferenced
	case errors.Is(err, models.ErrDuplicate):
		return http.StatusConflict, msgDuplicate
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden, msgForbidden
	case errors.Is(err, models.ErrUnauthenticated):
		return http.StatusUnauthorized, msgUnauthenticated
	case errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized, msgInvalidCredentials
	case errors.Is(err, models.ErrOrderCreation):
		return http.StatusInternalServerError, msgOrderCreation
	}
	return http.StatusInternalServerError, msgInternal
}

// respondError writes the error response and aborts the chain. The raw
// error is attached to the context for the request logger.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	var raised *models.RaisedError
	if errors.As(err, &raised) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": raised.Message})
		return
	}

	status, id := classify(err)
	body := gin.H{"error": localize(c, id)}
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		body["field"] = verr.Field
		body["detail"] = verr.Message
	}
	c.AbortWithStatusJSON(status, body)
}

// respondBindError reports a malformed or incomplete request body.
func respondBindError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"error":  localize(c, msgInvalidRequest),
		"detail": err.Error(),
	})
}

func respondMessage(c *gin.Context, id messageID) {
	c.JSON(http.StatusOK, gin.H{"message": localize(c, id)})
}
