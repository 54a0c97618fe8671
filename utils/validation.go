package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var fieldNames = map[string]string{
	"Email":           "email",
	"Password":        "password",
	"FullName":        "nama lengkap",
	"Name":            "nama",
	"Phone":           "nomor telepon",
	"Address":         "alamat",
	"Price":           "harga",
	"Category":        "kategori",
	"ProductID":       "produk",
	"Quantity":        "jumlah",
	"OldPassword":     "password lama",
	"NewPassword":     "password baru",
	"ConfirmPassword": "konfirmasi password",
	"ImageURL":        "URL gambar",
}

// ValidationMessages turns binding errors into Indonesian messages keyed by
// struct field. The second result is false when err is not a validation
// error (malformed JSON, wrong types).
func ValidationMessages(err error) (map[string]string, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[strings.ToLower(fe.Field())] = describe(fe)
	}
	return out, true
}

func describe(fe validator.FieldError) string {
	name, ok := fieldNames[fe.Field()]
	if !ok {
		name = strings.ToLower(fe.Field())
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s wajib diisi", name)
	case "email":
		return fmt.Sprintf("%s tidak valid", name)
	case "min":
		return fmt.Sprintf("%s minimal %s karakter", name, fe.Param())
	case "max":
		return fmt.Sprintf("%s maksimal %s", name, fe.Param())
	case "eqfield":
		return fmt.Sprintf("%s tidak cocok", name)
	case "url":
		return fmt.Sprintf("%s harus berupa URL", name)
	default:
		return fmt.Sprintf("%s tidak valid", name)
	}
}
