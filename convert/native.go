package convert

// Native is the production implementation of every converter.
type Native struct{}

func (Native) AudioToBinary(in, out string) error { return AudioToBinary(in, out) }
func (Native) BinaryToAudio(in, out string) error { return BinaryToAudio(in, out) }
func (Native) DecodeImage(path string) error      { return DecodeImage(path) }
func (Native) EncodeImage(path string) error      { return EncodeImage(path) }

func (Native) XMLToBinary(kind ManifestKind, path string) error {
	return XMLToBinary(kind, path)
}

func (Native) BinaryToXML(kind ManifestKind, path string) error {
	return BinaryToXML(kind, path)
}
