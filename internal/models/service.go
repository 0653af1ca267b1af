package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

type ServiceCategory string

const (
	ServiceCategoryWebsite   ServiceCategory = "Website"
	ServiceCategoryMobileApp ServiceCategory = "Mobile Application"
	ServiceCategoryAIML      ServiceCategory = "AI/ML"
	ServiceCategoryUIUX      ServiceCategory = "UI/UX"
)

// ValidServiceCategory reports whether c is one of the catalog categories.
func ValidServiceCategory(c string) bool {
	switch ServiceCategory(c) {
	case ServiceCategoryWebsite, ServiceCategoryMobileApp, ServiceCategoryAIML, ServiceCategoryUIUX:
		return true
	}
	return false
}

// StringList stores a list of short strings as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("unsupported type for StringList")
}

// Service is one catalog offering.
type Service struct {
	BaseModel
	Name        string          `gorm:"not null" json:"name"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Category    ServiceCategory `gorm:"type:varchar(30);not null" json:"category"`
	Items       StringList      `gorm:"type:text" json:"items"`
	// Image holds the storage reference returned by the object storage
	// gateway, not a provider URL.
	Image       string `json:"image"`
	CreatedByID string `gorm:"type:uuid" json:"createdBy"`
}
