// internal/handlers/contact/send-contact-notification/validation.go
package sendcontactnotification

import "therapy-paws/internal/common/validation"

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"firstName", "lastName", "email", "subject", "message"},
		Properties: map[string]validation.Property{
			"firstName": {
				Type:      "string",
				MinLength: intPtr(1),
				MaxLength: intPtr(100),
			},
			"lastName": {
				Type:      "string",
				MinLength: intPtr(1),
				MaxLength: intPtr(100),
			},
			"email": {
				Type:      "string",
				MinLength: intPtr(5),
				MaxLength: intPtr(255),
			},
			"phone": {
				Type:      "string",
				MaxLength: intPtr(50),
			},
			"organization": {
				Type:      "string",
				MaxLength: intPtr(200),
			},
			"address": {
				Type:      "string",
				MaxLength: intPtr(500),
			},
			"subject": {
				Type:      "string",
				MinLength: intPtr(1),
				MaxLength: intPtr(200),
			},
			"message": {
				Type:      "string",
				MinLength: intPtr(1),
				MaxLength: intPtr(5000),
			},
			"structured_address": {
				Type: "object",
			},
			"coordinates": {
				Type:      "string",
				MaxLength: intPtr(100),
			},
		},
		AdditionalProperties: true,
	}
}

func intPtr(i int) *int {
	return &i
}
