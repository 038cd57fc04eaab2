package emailsvc

import (
	"bytes"
	"net/mail"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umairnumplate/noor-ul-masajid/core"
	appfs "github.com/umairnumplate/noor-ul-masajid/fs"
	logsvc "github.com/umairnumplate/noor-ul-masajid/services/logger"
)

func newConf() *core.Config {
	return &core.Config{AppName: "Noor ul Masajid", Email: core.EmailConfig{DefaultFrom: "noreply@example.com"}}
}

func TestConsoleService_SendMessages(t *testing.T) {
	require.NoError(t, core.ParseEmailTemplates(appfs.FS))

	svc := NewConsoleServiceMock(newConf(), logsvc.NewNopLogger())
	out := new(bytes.Buffer)
	svc.out = out

	to := []mail.Address{{Name: "Office", Address: "office@example.com"}, {Address: "imam@example.com"}}
	svc.SendMessages(
		&core.EmailMessage{
			To:           to,
			Subject:      "Eid Holidays",
			TemplateName: "announcement",
			TemplateData: map[string]interface{}{"Title": "Eid Holidays", "Content": "Closed for three days.", "Date": "October 1, 2024"},
		},
		&core.EmailMessage{To: to, Subject: "plain", BodyStr: "Just text."},
		&core.EmailMessage{Subject: "nobody", BodyStr: "Not sent."},
		&core.EmailMessage{To: to, Subject: "missing template", TemplateName: "nope"},
	)

	sent := svc.SentMessages()
	require.Len(t, sent, 2)
	assert.Equal(t, "Noor ul Masajid\n"+strings.Repeat("=", 30)+"\n\nEid Holidays\n\nClosed for three days.\n\nPosted on October 1, 2024\n\n--\nThis message was sent by the Noor ul Masajid records office.\n", sent[0].TextContent)
	assert.Equal(t, "Just text.", sent[1].TextContent)

	printed := out.String()
	assert.Contains(t, printed, "From: noreply@example.com\r\n")
	assert.Contains(t, printed, "Subject: [Noor ul Masajid] Eid Holidays\r\n")
	assert.Contains(t, printed, `To: "Office" <office@example.com>, <imam@example.com>`)
	assert.NotContains(t, printed, "Not sent.")
}

func TestJoinAddresses(t *testing.T) {
	assert.Empty(t, joinAddresses(nil))
	assert.Equal(t, "<a@example.com>", joinAddresses([]mail.Address{{Address: "a@example.com"}}))
}
