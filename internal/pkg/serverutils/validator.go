package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest checks struct tags on a parsed request body and turns
// violations into a 400 with a readable field list.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var invalid []string
	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range errs {
			invalid = append(invalid, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
	}

	return fiber.NewError(fiber.StatusBadRequest,
		fmt.Sprintf("Invalid request: %s", strings.Join(invalid, ", ")))
}
