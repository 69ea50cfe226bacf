package utils

import (
	"bytes"
	"io/ioutil"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeUTF16 converts a UTF-16 little endian payload to utf8. Wide
// strings come from host APIs on some platforms; the code generator
// converts them at the point the text value is materialized.
func DecodeUTF16(in []byte) (string, error) {
	codec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	decoded, err := ioutil.ReadAll(
		transform.NewReader(
			bytes.NewReader(in), codec.NewDecoder()))
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
