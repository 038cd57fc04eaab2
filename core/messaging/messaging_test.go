package messaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"0300-1234567", "923001234567"},
		{"300 1234567", "923001234567"},
		{"+92 300 1234567", "923001234567"},
		{"042-35761234", "04235761234"},
		{"n/a", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.in))
		})
	}
}

func TestWhatsAppURLs(t *testing.T) {
	assert.Equal(t, "https://wa.me/923001234567", WhatsAppURL("0300-1234567"))
	assert.Empty(t, WhatsAppURL("none"))
	assert.Empty(t, WhatsAppMessageURL("none", "hi"))
	assert.Equal(t, "https://wa.me/923001234567?text=Salam%20%26%20welcome!", WhatsAppMessageURL("0300-1234567", "Salam & welcome!"))
	assert.Equal(t,
		"https://api.whatsapp.com/send?phone=923211234567&text=Line%201%0ALine%202",
		WhatsAppShareURL("0321-1234567", "Line 1\nLine 2"),
	)
}

func TestSMSURI(t *testing.T) {
	got := SMSURI([]string{"0300-1234567", "0321 7654321"}, "Fees due (October)")
	assert.Equal(t, "sms:03001234567,03217654321?body=Fees%20due%20(October)", got)
}

func TestEncodeURIComponent(t *testing.T) {
	assert.Equal(t, "a-b_c.d!e~f*g'h(i)j", EncodeURIComponent("a-b_c.d!e~f*g'h(i)j"))
	assert.Equal(t, "%2F%3F%3D%26%2B%20", EncodeURIComponent("/?=&+ "))
}

func TestClipboardText(t *testing.T) {
	got := ClipboardText("Noor ul Masajid", "Classes resume Monday.", []string{"0300-1234567", "0321-7654321"})
	assert.Equal(t, "Message from Noor ul Masajid:\nClasses resume Monday.\n\nRecipients:\n0300-1234567\n0321-7654321", got)
}
