package proxy

import (
	"errors"
	"io"
	"net"

	"github.com/sirupsen/logrus"

	"rotmg-proxy/internal/codec"
)

// forwardDirection pumps raw frames from src, reciphers each payload with
// dst's encoder, and writes the re-framed bytes to dst. It runs until src
// reaches EOF, a decode/encode error occurs, or writing to dst fails.
//
// Per spec.md §4.E the proxy never inspects or reorders packets: each
// RawPacket passes straight from decoder to encoder.
func forwardDirection(label string, src io.Reader, dst io.Writer, dec *codec.Decoder, enc *codec.Encoder, log *logrus.Entry) error {
	readBuf := make([]byte, 32*1024)
	for {
		n, readErr := src.Read(readBuf)
		if n > 0 {
			dec.Feed(readBuf[:n])
			for {
				raw, err := dec.Next()
				if err != nil {
					return err
				}
				if raw == nil {
					break
				}
				if _, err := dst.Write(enc.Encode(raw)); err != nil {
					return err
				}
			}
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				log.WithField("direction", label).Debug("source closed")
				return nil
			}
			return readErr
		}
	}
}

// closeWrite half-closes the write side of conn if it supports it,
// signaling end-of-stream to the peer without tearing down reads that
// may still be in flight on the other direction's forwarder.
func closeWrite(conn net.Conn) {
	if tc, ok := conn.(*net.TCPConn); ok {
		_ = tc.CloseWrite()
		return
	}
	_ = conn.Close()
}
