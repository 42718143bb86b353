package validator

import (
	"log"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func RegisterGinValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		err := v.RegisterValidation("phonenumber", phoneNumberValidator)
		if err != nil {
			log.Fatal("register phonenumber validator failed")
		}
		err = v.RegisterValidation("cni", cniValidator)
		if err != nil {
			log.Fatal("register cni validator failed")
		}
	}
}

// Local mobile numbers: 9 digits starting with 7 (e.g. 771234567).
var phoneNumberValidator validator.Func = func(fl validator.FieldLevel) bool {
	phoneNumber := fl.Field().String()
	pattern := `^7\d{8}$`
	matched, err := regexp.MatchString(pattern, phoneNumber)
	if err != nil {
		return false
	}
	return matched
}

// National identity card numbers are 12 to 14 digits.
var cniValidator validator.Func = func(fl validator.FieldLevel) bool {
	cni := fl.Field().String()
	pattern := `^\d{12,14}$`
	matched, err := regexp.MatchString(pattern, cni)
	if err != nil {
		return false
	}
	return matched
}
