package service_test

import (
	"testing"

	"github.com/Behyna/sms-services/autoresponder/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestCatalog_Match(t *testing.T) {
	catalog := service.NewCatalog(nil)

	tests := []struct {
		name     string
		message  string
		category service.Category
		reply    string
	}{
		{"menu keyword", "menu", service.CategoryMenu, service.ReplyMenu},
		{"menu by number", "1", service.CategoryMenu, service.ReplyMenu},
		{"price inside sentence", "what is the price of pizza", service.CategoryMenu, service.ReplyMenu},
		{"khana", "khana kya hai", service.CategoryMenu, service.ReplyMenu},
		{"booking", "i want a booking", service.CategoryBooking, service.ReplyBooking},
		{"delivery", "delivery please", service.CategoryBooking, service.ReplyBooking},
		{"contact", "contact", service.CategoryContact, service.ReplyContact},
		{"address", "your address?", service.CategoryContact, service.ReplyContact},
		{"hours", "when do you open", service.CategoryHours, service.ReplyHours},
		{"baje", "kitne baje", service.CategoryHours, service.ReplyHours},
		{"greeting", "hello", service.CategoryGreeting, service.ReplyWelcome},
		{"salam", "salam", service.CategoryGreeting, service.ReplyWelcome},
		{"thanks", "thanks", service.CategoryThanks, service.ReplyThanks},
		{"shukriya", "shukriya", service.CategoryThanks, service.ReplyThanks},
		{"farewell", "bye", service.CategoryFarewell, service.ReplyFarewell},
		{"allah hafiz", "allah hafiz", service.CategoryFarewell, service.ReplyFarewell},
		{"no match", "xyz", service.CategoryDefault, service.ReplyDefault},
		{"empty", "", service.CategoryDefault, service.ReplyDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, reply := catalog.Match(tt.message)
			assert.Equal(t, tt.category, category)
			assert.Equal(t, tt.reply, reply)
		})
	}
}

func TestCatalog_Priority(t *testing.T) {
	catalog := service.NewCatalog(nil)

	t.Run("menu before booking", func(t *testing.T) {
		category, _ := catalog.Match("menu order")
		assert.Equal(t, service.CategoryMenu, category)
	})

	t.Run("booking before contact", func(t *testing.T) {
		category, _ := catalog.Match("order by phone")
		assert.Equal(t, service.CategoryBooking, category)
	})

	t.Run("hours before greeting", func(t *testing.T) {
		category, _ := catalog.Match("hi, what time")
		assert.Equal(t, service.CategoryHours, category)
	})

	t.Run("triggers match as substrings", func(t *testing.T) {
		category, _ := catalog.Match("thinking")
		assert.Equal(t, service.CategoryGreeting, category)
	})
}

func TestCatalog_Overrides(t *testing.T) {
	catalog := service.NewCatalog(map[string]string{
		"thanks":  "Much obliged!",
		"default": "Try MENU.",
		"menu":    "",
	})

	_, reply := catalog.Match("thank you")
	assert.Equal(t, "Much obliged!", reply)

	_, reply = catalog.Match("???")
	assert.Equal(t, "Try MENU.", reply)

	_, reply = catalog.Match("menu")
	assert.Equal(t, service.ReplyMenu, reply)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "menu please", service.Normalize("  MENU Please \n"))
}
