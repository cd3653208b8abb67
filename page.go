package vparquet

import (
	"fmt"

	"github.com/segmentio/vparquet/format"
)

// Page represents a page read by ColumnPages.
//
// The data of a page is held in a buffer owned by the ColumnPages instance that
// produced it, it remains valid until the next call to ReadPage.
type Page struct {
	header *format.PageHeader
	data   []byte
}

// Header returns the thrift header of the page.
func (p *Page) Header() *format.PageHeader { return p.header }

// Type returns the type of the page.
func (p *Page) Type() format.PageType { return p.header.Type }

// NumValues returns the number of values in the page, including nulls.
func (p *Page) NumValues() int {
	switch h := p.header; {
	case h.DataPageHeader != nil:
		return int(h.DataPageHeader.NumValues)
	case h.DataPageHeaderV2 != nil:
		return int(h.DataPageHeaderV2.NumValues)
	case h.DictionaryPageHeader != nil:
		return int(h.DictionaryPageHeader.NumValues)
	default:
		return 0
	}
}

// NumNulls returns the number of null values in the page. Only version 2 data
// page headers carry this information, zero is returned for other pages.
func (p *Page) NumNulls() int {
	if h := p.header.DataPageHeaderV2; h != nil {
		return int(h.NumNulls)
	}
	return 0
}

// Encoding returns the encoding of values in the page.
func (p *Page) Encoding() format.Encoding {
	switch h := p.header; {
	case h.DataPageHeader != nil:
		return h.DataPageHeader.Encoding
	case h.DataPageHeaderV2 != nil:
		return h.DataPageHeaderV2.Encoding
	case h.DictionaryPageHeader != nil:
		return h.DictionaryPageHeader.Encoding
	default:
		return format.Plain
	}
}

// Data returns the uncompressed values section of the page. Repetition and
// definition levels of version 2 data pages are not included.
func (p *Page) Data() []byte { return p.data }

func (p *Page) String() string {
	return fmt.Sprintf("%s{values:%d,encoding:%s,size:%d}", p.Type(), p.NumValues(), p.Encoding(), len(p.data))
}
