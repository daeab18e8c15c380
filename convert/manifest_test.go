package convert

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestManifestRoundTrip(t *testing.T) {
	entries := []ManifestEntry{
		{Key: "zeta", Value: "last & first"},
		{Key: "alpha", Value: "<escaped>"},
		{Key: "empty", Value: ""},
		{Key: "unicode", Value: "héllo wörld"},
	}
	for _, kind := range []ManifestKind{WordPackDict, SoundManifest, ItemManifest} {
		t.Run(kind.Root, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, kind.Name)
			if err := WriteManifestXML(kind, path+XMLSuffix, entries); err != nil {
				t.Fatal(err)
			}

			if err := XMLToBinary(kind, path); err != nil {
				t.Fatalf("XMLToBinary failed: %v", err)
			}
			bin, _ := os.ReadFile(path)
			if string(bin[:4]) != string(kind.Magic[:]) {
				t.Errorf("magic = %q, want %q", bin[:4], kind.Magic[:])
			}

			os.Remove(path + XMLSuffix)
			if err := BinaryToXML(kind, path); err != nil {
				t.Fatalf("BinaryToXML failed: %v", err)
			}
			got, err := ReadManifestXML(kind, path+XMLSuffix)
			if err != nil {
				t.Fatal(err)
			}
			if !slices.Equal(got, entries) {
				t.Errorf("entries = %v, want %v", got, entries)
			}
		})
	}
}

func TestXMLToBinaryReadOnlyKind(t *testing.T) {
	path := filepath.Join(t.TempDir(), ResIDMap.Name)
	if err := XMLToBinary(ResIDMap, path); !errors.Is(err, ErrReadOnlyKind) {
		t.Errorf("XMLToBinary(ResIDMap) = %v, want ErrReadOnlyKind", err)
	}
}

func TestResIDMapUnpacks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ResIDMap.Name)
	f, _ := os.Create(path)
	if err := encodeManifest(f, ResIDMap, []ManifestEntry{{Key: "1001", Value: "sword.png"}}); err != nil {
		t.Fatal(err)
	}
	f.Close()

	if err := BinaryToXML(ResIDMap, path); err != nil {
		t.Fatalf("BinaryToXML failed: %v", err)
	}
	data, _ := os.ReadFile(path + XMLSuffix)
	if !strings.Contains(string(data), `<resIdMap>`) || !strings.Contains(string(data), `key="1001"`) {
		t.Errorf("unexpected XML:\n%s", data)
	}
}

func TestManifestErrors(t *testing.T) {
	dir := t.TempDir()

	wrongRoot := filepath.Join(dir, "sndmanifest.dat")
	os.WriteFile(wrongRoot+XMLSuffix, []byte(`<itemManifest><entry key="a">b</entry></itemManifest>`), 0o644)
	if err := XMLToBinary(SoundManifest, wrongRoot); !errors.Is(err, ErrWrongRoot) {
		t.Errorf("wrong root: got %v, want ErrWrongRoot", err)
	}

	wrongMagic := filepath.Join(dir, "wordPackDict.dat")
	os.WriteFile(wrongMagic, []byte("ITMM\x00\x00\x00\x00"), 0o644)
	if err := BinaryToXML(WordPackDict, wrongMagic); !errors.Is(err, ErrBadMagic) {
		t.Errorf("wrong magic: got %v, want ErrBadMagic", err)
	}

	// count says two entries, only one present
	short := filepath.Join(dir, "itemmanifest.dat")
	os.WriteFile(short, []byte("ITMM\x00\x00\x00\x02\x00\x01k\x00\x00\x00\x01v"), 0o644)
	if err := BinaryToXML(ItemManifest, short); !errors.Is(err, ErrTruncated) {
		t.Errorf("truncated: got %v, want ErrTruncated", err)
	}
	if _, err := os.Stat(short + XMLSuffix); !os.IsNotExist(err) {
		t.Error("XML written for truncated manifest")
	}
}
