package binfmt

const (
	CTDSignature  = "@CTD"
	CTDHeaderSize = 0x20
	MessageSize   = 8
)

// CTDHeader is the 32-byte header of a dialogue container.
type CTDHeader struct {
	Signature     string `binary:"[4]byte"`
	Version       uint32
	Unknown1      uint16
	Unknown2      uint16
	LayoutCount   uint16
	MessageCount  uint16
	MessageOffset uint32
	LayoutOffset  uint32
	TextOffset    uint32
	Unknown3      uint32
}

// MessageHeader is one entry of the message table. LayoutIndex is stored
// on disk multiplied by 16.
type MessageHeader struct {
	ID          uint16 `json:"id"`
	Set         uint16 `json:"set"`
	Offset      uint16 `json:"offset"`
	LayoutIndex uint16 `json:"layoutIndex"`
}

// Layout is a presentation record of the layout table. Its shape depends on
// the container version: *LayoutV1 or *LayoutGeneric.
type Layout interface {
	layout()
}

// LayoutV1 is the presentation layout used by version 1 containers.
type LayoutV1 struct {
	DialogX         int16  `json:"dialogX"`
	DialogY         int16  `json:"dialogY"`
	DialogWidth     uint16 `json:"dialogWidth"`
	DialogHeight    uint16 `json:"dialogHeight"`
	DialogAlignment uint8  `json:"dialogAlignment"`
	DialogBorders   uint8  `json:"dialogBorders"`
	TextAlignment   uint8  `json:"textAlignment"`
	Unknown1        uint8  `json:"unknown_1"`
	FontSize        uint8  `json:"fontSize"`
	HorizontalSpace uint8  `json:"horizontalSpace"`
	VerticalSpace   uint8  `json:"verticalSpace"`
	TextX           uint8  `json:"textX"`
	TextY           uint8  `json:"textY"`
	DialogHook      uint8  `json:"dialogHook"`
	DialogHookX     uint8  `json:"dialogHookX"`
	Unknown2        uint8  `json:"unknown_2"`
	Unknown3        uint16 `json:"unknown_3"`
	Unknown4        uint16 `json:"unknown_4"`
}

// LayoutGeneric is the 20-byte layout used by every other version.
type LayoutGeneric struct {
	Unknown1  uint16 `json:"unknown_1"`
	Unknown2  uint16 `json:"unknown_2"`
	Unknown3  uint16 `json:"unknown_3"`
	Unknown4  uint16 `json:"unknown_4"`
	Unknown5  uint8  `json:"unknown_5"`
	Unknown6  uint8  `json:"unknown_6"`
	Unknown7  uint8  `json:"unknown_7"`
	Unknown8  uint8  `json:"unknown_8"`
	Unknown9  uint16 `json:"unknown_9"`
	Unknown10 uint16 `json:"unknown_10"`
	Unknown11 uint16 `json:"unknown_11"`
	Unknown12 uint16 `json:"unknown_12"`
}

func (*LayoutV1) layout()      {}
func (*LayoutGeneric) layout() {}

const (
	LayoutV1Size      = 24
	LayoutGenericSize = 20
)
