package convert

import (
	"bufio"
	"encoding/binary"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"os"
)

// XMLSuffix is appended to a manifest path for its XML form.
const XMLSuffix = ".xml"

// ManifestKind describes one manifest format.
type ManifestKind struct {
	Name     string // file name matched by the dispatcher
	Root     string // XML root element
	Magic    [4]byte
	ReadOnly bool // only BinaryToXML is supported
}

var (
	WordPackDict  = ManifestKind{Name: "wordPackDict.dat", Root: "wordPackDict", Magic: [4]byte{'W', 'P', 'K', 'D'}}
	SoundManifest = ManifestKind{Name: "sndmanifest.dat", Root: "sndManifest", Magic: [4]byte{'S', 'N', 'D', 'M'}}
	ItemManifest  = ManifestKind{Name: "itemmanifest.dat", Root: "itemManifest", Magic: [4]byte{'I', 'T', 'M', 'M'}}
	ResIDMap      = ManifestKind{Name: "residmap.dat", Root: "resIdMap", Magic: [4]byte{'R', 'I', 'D', 'M'}, ReadOnly: true}
)

// ManifestKinds lists every known kind.
var ManifestKinds = []ManifestKind{WordPackDict, SoundManifest, ItemManifest, ResIDMap}

// ManifestEntry is one key/value pair. Order is preserved through both forms.
type ManifestEntry struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

type manifestDoc struct {
	XMLName xml.Name
	Entries []ManifestEntry `xml:"entry"`
}

// XMLToBinary reads path + XMLSuffix and writes the binary manifest to path.
func XMLToBinary(kind ManifestKind, path string) error {
	if kind.ReadOnly {
		return fmt.Errorf("%w: %s", ErrReadOnlyKind, kind.Name)
	}
	entries, err := ReadManifestXML(kind, path+XMLSuffix)
	if err != nil {
		return err
	}
	return writeAtomic(path, func(f *os.File) error {
		bw := bufio.NewWriter(f)
		if err := encodeManifest(bw, kind, entries); err != nil {
			return fmt.Errorf("encode %s: %w", path, err)
		}
		return bw.Flush()
	})
}

// BinaryToXML reads the binary manifest at path and writes path + XMLSuffix.
func BinaryToXML(kind ManifestKind, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	entries, err := decodeManifest(bufio.NewReader(f), kind)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return WriteManifestXML(kind, path+XMLSuffix, entries)
}

// ReadManifestXML parses an XML manifest of the given kind.
func ReadManifestXML(kind ManifestKind, path string) ([]ManifestEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var doc manifestDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if doc.XMLName.Local != kind.Root {
		return nil, fmt.Errorf("%w: %s has <%s>, want <%s>", ErrWrongRoot, path, doc.XMLName.Local, kind.Root)
	}
	return doc.Entries, nil
}

// WriteManifestXML writes entries as an indented XML manifest.
func WriteManifestXML(kind ManifestKind, path string, entries []ManifestEntry) error {
	doc := manifestDoc{XMLName: xml.Name{Local: kind.Root}, Entries: entries}
	return writeAtomic(path, func(f *os.File) error {
		if _, err := io.WriteString(f, xml.Header); err != nil {
			return err
		}
		enc := xml.NewEncoder(f)
		enc.Indent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode %s: %w", path, err)
		}
		if err := enc.Close(); err != nil {
			return err
		}
		_, err := io.WriteString(f, "\n")
		return err
	})
}

// Binary layout: magic, uint32 count, then per entry a uint16 key length,
// the key, a uint32 value length and the value. All integers big endian.
func encodeManifest(w io.Writer, kind ManifestKind, entries []ManifestEntry) error {
	if _, err := w.Write(kind.Magic[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, uint32(len(entries))); err != nil {
		return err
	}
	for _, e := range entries {
		if len(e.Key) > math.MaxUint16 {
			return fmt.Errorf("%w: %.32q...", ErrKeyTooLong, e.Key)
		}
		if err := binary.Write(w, binary.BigEndian, uint16(len(e.Key))); err != nil {
			return err
		}
		if _, err := io.WriteString(w, e.Key); err != nil {
			return err
		}
		if err := binary.Write(w, binary.BigEndian, uint32(len(e.Value))); err != nil {
			return err
		}
		if _, err := io.WriteString(w, e.Value); err != nil {
			return err
		}
	}
	return nil
}

func decodeManifest(r io.Reader, kind ManifestKind) ([]ManifestEntry, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, ErrTruncated
	}
	if magic != kind.Magic {
		return nil, fmt.Errorf("%w: got %q, want %q", ErrBadMagic, magic[:], kind.Magic[:])
	}
	var count uint32
	if err := binary.Read(r, binary.BigEndian, &count); err != nil {
		return nil, ErrTruncated
	}

	var entries []ManifestEntry
	for i := range count {
		var klen uint16
		if err := binary.Read(r, binary.BigEndian, &klen); err != nil {
			return nil, fmt.Errorf("%w: entry %d", ErrTruncated, i)
		}
		key := make([]byte, klen)
		if _, err := io.ReadFull(r, key); err != nil {
			return nil, fmt.Errorf("%w: entry %d key", ErrTruncated, i)
		}
		var vlen uint32
		if err := binary.Read(r, binary.BigEndian, &vlen); err != nil {
			return nil, fmt.Errorf("%w: entry %d", ErrTruncated, i)
		}
		val, err := readN(r, int64(vlen))
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d value", ErrTruncated, i)
		}
		entries = append(entries, ManifestEntry{Key: string(key), Value: string(val)})
	}
	return entries, nil
}

// readN reads exactly n bytes without trusting n for the allocation.
func readN(r io.Reader, n int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, n))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) != n {
		return nil, io.ErrUnexpectedEOF
	}
	return data, nil
}
