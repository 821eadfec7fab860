package parser

import (
	"bytes"
	"io"

	"github.com/richardlehane/mscfb"
)

// SupportedExtensions lists the file extensions accepted for upload.
var SupportedExtensions = []string{".xlsx", ".xls"}

type container int

const (
	containerUnknown container = iota
	containerZip
	containerOLE
)

func (c container) String() string {
	switch c {
	case containerZip:
		return "zip"
	case containerOLE:
		return "ole2"
	default:
		return "unknown"
	}
}

var (
	zipMagic = []byte{'P', 'K', 0x03, 0x04}
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// sniffContainer identifies the binary container by its magic bytes.
func sniffContainer(data []byte) container {
	switch {
	case bytes.HasPrefix(data, zipMagic):
		return containerZip
	case bytes.HasPrefix(data, oleMagic):
		return containerOLE
	default:
		return containerUnknown
	}
}

// checkLegacyWorkbook verifies an OLE2 compound file holds a BIFF workbook stream.
func checkLegacyWorkbook(data []byte) error {
	doc, err := mscfb.New(bytes.NewReader(data))
	if err != nil {
		return err
	}

	for entry, err := doc.Next(); ; entry, err = doc.Next() {
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		switch entry.Name {
		case "Workbook", "Book":
			return nil
		case "EncryptedPackage":
			return ErrEncryptedWorkbook
		}
	}

	return ErrUnrecognizedContainer
}
