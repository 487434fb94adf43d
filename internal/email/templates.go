package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

type baseEmailData struct {
	Title   string
	Heading string
}

type orderEmailData struct {
	baseEmailData
	SizeName          string
	BasePrice         int
	BookingDescriptor string
	ContactName       string
	Address           string
	Phone             string
	Email             string
	Notes             string
	BusinessPhone     string
}

func newOrderEmailData(p OrderEmailParams, businessPhone, title, heading string) orderEmailData {
	return orderEmailData{
		baseEmailData: baseEmailData{
			Title:   title,
			Heading: heading,
		},
		SizeName:          p.SizeName,
		BasePrice:         p.BasePrice,
		BookingDescriptor: p.BookingDescriptor,
		ContactName:       p.ContactName,
		Address:           p.Address,
		Phone:             p.Phone,
		Email:             p.Email,
		Notes:             p.Notes,
		BusinessPhone:     businessPhone,
	}
}

func renderEmailTemplate(name string, data any) (string, error) {
	templates := []string{"templates/base.html", "templates/" + name}
	tmpl, err := template.New("base.html").ParseFS(templateFS, templates...)
	if err != nil {
		return "", fmt.Errorf("parse email template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "email", data); err != nil {
		return "", fmt.Errorf("execute email template %s: %w", name, err)
	}
	return buf.String(), nil
}
