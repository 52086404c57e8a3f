package service

import (
	"errors"

	"github.com/techmaster-vietnam/goerrorkit"
	"gorm.io/gorm"
)

// lookupError đổi gorm.ErrRecordNotFound thành lỗi 404, các lỗi khác được wrap
func lookupError(err error, notFoundMessage, wrapMessage string, data map[string]interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return goerrorkit.NewBusinessError(404, notFoundMessage).WithData(data)
	}
	return goerrorkit.WrapWithMessage(err, wrapMessage)
}

// isNotFound reports whether err is gorm.ErrRecordNotFound
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
