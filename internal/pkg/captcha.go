package pkg

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mojocn/base64Captcha"
)

const (
	captchaWidth  = 200
	captchaHeight = 60
)

// CaptchaRenderer turns an already-chosen code into a throwaway PNG under
// the captcha directory. It owns rendering only; code generation and
// challenge bookkeeping live in the service layer.
type CaptchaRenderer struct {
	driver *base64Captcha.DriverString
	dir    string
}

func NewCaptchaRenderer(dir string) *CaptchaRenderer {
	driver := base64Captcha.NewDriverString(
		captchaHeight, captchaWidth,
		2, base64Captcha.OptionShowHollowLine,
		6, CaptchaChars, nil, nil, nil,
	)
	return &CaptchaRenderer{driver: driver, dir: dir}
}

// WriteImage renders code and returns the artifact path,
// e.g. static/captchas/captcha_qwertyuiop.png.
func (r *CaptchaRenderer) WriteImage(code string) (string, error) {
	item, err := r.driver.DrawCaptcha(code)
	if err != nil {
		return "", err
	}

	name, err := RandCode(10, LowercaseChars)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(r.dir, fmt.Sprintf("captcha_%s.png", name))

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := item.WriteTo(f); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
