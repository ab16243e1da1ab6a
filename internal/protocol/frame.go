package protocol

import "encoding/binary"

// Frame encodes one command for the USB bulk pipe: a 4-byte little-endian
// signed length prefix (command length plus 2) followed by the raw command
// bytes, no terminator. Prefix and payload are returned separately because
// the target expects them as two bulk transfers.
func Frame(cmd string) (prefix, payload []byte) {
	prefix = make([]byte, 4)
	binary.LittleEndian.PutUint32(prefix, uint32(int32(len(cmd)+2)))
	return prefix, []byte(cmd)
}

// Line encodes one command for the network pipe: the command text with a
// CRLF terminator, no length framing.
func Line(cmd string) []byte {
	return []byte(cmd + "\r\n")
}
