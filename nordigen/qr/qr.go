package qr

import (
	"net/url"
	"os"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
	"github.com/skip2/go-qrcode"
)

var logger = logrus.WithField("component", "nordigen.qr")

// DefaultSize PNG edge in pixels
const DefaultSize = 300

var ErrInvalidLink = errors.New("link must be an absolute http(s) URL")

// PNG renders the bank authorisation link of a requisition as a QR code image,
// so the end user can continue on a phone.
func PNG(link string, size int) ([]byte, error) {
	if err := validate(link); err != nil {
		return nil, err
	}
	if size <= 0 {
		size = DefaultSize
	}
	return qrcode.Encode(link, qrcode.Medium, size)
}

func WriteFile(link, path string) error {
	data, err := PNG(link, DefaultSize)
	if err != nil {
		return err
	}

	logger.Debugf("Writing QR code to %s", path)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

// Terminal renders the link with unicode half blocks, ready to print on a console.
func Terminal(link string) (string, error) {
	if err := validate(link); err != nil {
		return "", err
	}
	q, err := qrcode.New(link, qrcode.Medium)
	if err != nil {
		return "", errors.Wrap(err, "qr encode")
	}
	return q.ToSmallString(false), nil
}

func validate(link string) error {
	u, err := url.Parse(link)
	if err != nil {
		return errors.Wrap(ErrInvalidLink, err.Error())
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.Wrapf(ErrInvalidLink, "%q", link)
	}
	return nil
}
