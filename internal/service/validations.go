package service

import (
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		// Display color for a water type: '#' followed by exactly six hex
		// digits, either case. The built-in hexcolor also admits the
		// three-digit shorthand, which stored rows must not carry.
		validate.RegisterValidation("water_color", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if len(value) != 7 || value[0] != '#' {
				return false
			}
			for _, char := range value[1:] {
				if !unicode.Is(unicode.ASCII_Hex_Digit, char) {
					return false
				}
			}
			return true
		})
	})
}
