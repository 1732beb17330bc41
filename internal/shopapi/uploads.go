package shopapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/tidwall/gjson"
)

const proofOfPaymentPath = "/uploads/proof-of-payment"

// ProofOfPaymentUpload is a payment receipt to forward to the shop API.
// OrderID and CustomerName are optional associations.
type ProofOfPaymentUpload struct {
	FileName     string
	ContentType  string
	Data         []byte
	OrderID      int64
	CustomerName string
}

// UploadProofOfPayment forwards a proof-of-payment file and returns the name
// the server stored it under. When the response carries no fileName the
// original file name is returned.
func (c *Client) UploadProofOfPayment(ctx context.Context, upload ProofOfPaymentUpload) (string, error) {
	const op = "upload proof of payment"

	if len(upload.Data) > MaxUploadSize {
		err := &Error{Kind: KindValidation, Message: fmt.Sprintf("file exceeds maximum upload size of %d bytes", MaxUploadSize)}
		c.logErr(op, err)
		return "", err
	}

	builder := newFormBuilder().
		file("ProofOfPayment", upload.FileName, upload.ContentType, upload.Data)
	if upload.OrderID != 0 {
		builder.field("OrderId", strconv.FormatInt(upload.OrderID, 10))
	}
	if upload.CustomerName != "" {
		builder.field("CustomerName", upload.CustomerName)
	}

	body, contentType, err := builder.close()
	if err != nil {
		c.logErr(op, err)
		return "", err
	}

	respBody, status, err := c.doMultipart(ctx, http.MethodPost, proofOfPaymentPath, body, contentType)
	if err != nil {
		c.logErr(op, err)
		return "", err
	}
	if status >= 400 {
		err := statusError(respBody, status)
		c.logErr(op, err)
		return "", err
	}

	if name := gjson.GetBytes(respBody, "fileName").String(); name != "" {
		return name, nil
	}
	return upload.FileName, nil
}
