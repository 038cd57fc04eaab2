package tanzim

import (
	"encoding/base64"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"

	"github.com/umairnumplate/noor-ul-masajid/core"
)

// maxImageSize bounds document scans kept inline in the store.
const maxImageSize = 5 << 20

// Document names an image slot of a Record.
type Document string

const (
	DocCnicBForm      Document = "cnic"
	DocPassportPhoto1 Document = "photo1"
	DocPassportPhoto2 Document = "photo2"
	DocFeeReceipt     Document = "receipt"
)

var Documents = []Document{DocCnicBForm, DocPassportPhoto1, DocPassportPhoto2, DocFeeReceipt}

var ErrNotImage = errors.New("file is not an image")

// EncodeImage reads an image and returns it as a base64 data URL, its MIME type sniffed from the content.
func EncodeImage(r io.Reader) (string, error) {
	b, err := io.ReadAll(io.LimitReader(r, maxImageSize+1))
	if err != nil {
		return "", errors.Wrap(err, "reading image")
	}
	if len(b) > maxImageSize {
		return "", errors.Errorf("image larger than %d bytes", maxImageSize)
	}
	mime := mimetype.Detect(b)
	if !strings.HasPrefix(mime.String(), "image/") {
		return "", errors.Wrapf(ErrNotImage, "detected %s", mime.String())
	}
	return "data:" + mime.String() + ";base64," + base64.StdEncoding.EncodeToString(b), nil
}

func (r *Record) attach(doc Document, dataURL string) error {
	switch doc {
	case DocCnicBForm:
		r.CnicBFormCopy = dataURL
		r.RequiredDocuments.CnicBForm = true
	case DocPassportPhoto1:
		r.PassportPhoto1 = dataURL
		r.RequiredDocuments.PassportPhotos = r.PassportPhoto2 != ""
	case DocPassportPhoto2:
		r.PassportPhoto2 = dataURL
		r.RequiredDocuments.PassportPhotos = r.PassportPhoto1 != ""
	case DocFeeReceipt:
		r.FeeReceiptCopy = dataURL
		r.RequiredDocuments.FeeReceipt = true
	default:
		return core.NewValidationError(nil, core.FieldError{
			Field: "document",
			Error: "document must be one of cnic, photo1, photo2, receipt",
		})
	}
	return nil
}
