// Copyright 2026 The httptools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package httptools

import "fmt"

// phase is the MessageParser's state, following the same single
// "current state" idiom as the teacher's PMsg.state (parse_msg.go), widened
// with the additional granularity SPEC_FULL.md's phase machine calls for.
type phase uint8

const (
	phaseIdle phase = iota
	phaseStartLine
	phaseHeaders
	phaseBody
	phaseChunkSize
	phaseChunkData
	phaseChunkCRLF
	phaseChunkTrailer
	phaseComplete
	phaseUpgraded
	phaseDead
)

// framingMode is the body-framing decision made once headers are complete
// (spec §4.1 "Framing resolution").
type framingMode uint8

const (
	framingNone framingMode = iota
	framingLengthDelimited
	framingChunked
	framingEOF
)

// MessageParser incrementally parses a single HTTP/1.x request or response
// out of a byte stream delivered through successive FeedData calls,
// reporting each element of the message to sink as it is recognized.
//
// Grounded on the teacher's PMsg/ParseMsg (parse_msg.go): MessageParser
// plays the role PMsg plays (one struct tracking where this message's parse
// has gotten to), generalized from "parse what is already fully buffered,
// fail on EAGAIN" into "retain only the unconsumed tail across calls",
// since spec §2 requires feeding arbitrary fragments rather than whole
// buffered messages.
type MessageParser struct {
	isRequest bool
	sink      sinkCaps
	phase     phase

	carry   []byte
	scratch []byte // reused obs-fold accumulator for scanHeaderLine

	method Method

	versionKnown         bool
	versionMajor         int
	versionMinor         int
	statusCode           int
	headersDone          bool
	keepAlive            bool
	shouldUpgradeFlag    bool
	pipeliningAllowed    bool

	hasContentLengthHeader     bool
	contentLength              uint64
	hasTransferEncodingChunked bool
	hasUpgradeHeader           bool
	connCloseSeen              bool
	connKeepAliveSeen          bool
	connUpgradeSeen            bool

	framing        framingMode
	bytesRemaining uint64
	chunkRemaining uint64

	lastReqMethod Method // set by SetRequestMethod, consulted by response framing/upgrade rules
}

// NewRequestParser returns a MessageParser that parses HTTP requests,
// delivering events to sink (see Sink).
func NewRequestParser(sink Sink) *MessageParser {
	p := &MessageParser{isRequest: true, phase: phaseIdle}
	p.sink = probeSink(sink)
	return p
}

// NewResponseParser returns a MessageParser that parses HTTP responses.
func NewResponseParser(sink Sink) *MessageParser {
	p := &MessageParser{isRequest: false, phase: phaseIdle}
	p.sink = probeSink(sink)
	return p
}

// SetRequestMethod tells a response MessageParser the method of the
// request this response answers, which affects two framing rules that
// cannot be inferred from the response alone (spec §4.1): a response to
// HEAD never has a body, and a 2xx response to CONNECT signals an upgrade.
// Mirrors the prevMethod parameter the teacher's PMsg.BodyType takes
// (parse_msg.go) for exactly the same reason. Ignored on a request parser.
func (p *MessageParser) SetRequestMethod(m Method) {
	p.lastReqMethod = m
}

// FeedData delivers the next fragment of the byte stream to the parser.
// Fragment boundaries never affect the sequence of events a sink receives
// (spec §8 property 1): feeding one fragment at a time or the same bytes
// as a single call produces an identical callback trace.
//
// FeedData returns a *UpgradeError once the parser detects a protocol
// upgrade and hands control of the remaining bytes back to the caller, a
// *Error for any other parse or callback failure, or nil.
func (p *MessageParser) FeedData(data []byte) error {
	if p.phase == phaseDead || p.phase == phaseUpgraded {
		if len(data) == 0 {
			return nil
		}
		return newErr(KindDataAfterCompleted, 0, "feed on a terminated parser")
	}

	carryLen := len(p.carry)
	var buf []byte
	if carryLen > 0 {
		buf = append(p.carry, data...)
		p.carry = nil
	} else {
		buf = data
	}
	if len(buf) == 0 {
		return nil
	}

	err := p.run(buf)
	return adjustOffset(err, carryLen)
}

// run drives the phase state machine as far as buf allows, starting from
// offset 0 (buf is always the full carry+data concatenation for this
// call). It returns nil when buf is exhausted and more data is needed, or
// a non-nil error (protocol failure, callback failure, or upgrade signal).
func (p *MessageParser) run(buf []byte) error {
	i := 0
	for {
		switch p.phase {
		case phaseIdle:
			if i >= len(buf) {
				p.carry = nil
				return nil
			}
			if cbErr := p.sink.onMessageBegin(); cbErr != nil {
				p.phase = phaseDead
				return newCallbackErr(i, cbErr)
			}
			p.phase = phaseStartLine

		case phaseStartLine:
			if p.isRequest {
				next, rl, err := scanRequestLine(buf, i)
				if err != nil {
					if isNeedMore(err) {
						p.carry = copyTail(buf, i)
						return nil
					}
					p.phase = phaseDead
					return err
				}
				m := lookupMethod(rl.method.get(buf))
				if m == MethodUnknown {
					p.phase = phaseDead
					return newErr(KindInvalidMethod, rl.method.off, "unknown method %q", escapeBytes(rl.method.get(buf)))
				}
				p.method = m
				maj, min, _ := parseVersionDigits(rl.version.get(buf)[len("HTTP/"):])
				p.versionMajor, p.versionMinor = maj, min
				p.versionKnown = true
				if cbErr := p.sink.onURL(rl.target.get(buf)); cbErr != nil {
					p.phase = phaseDead
					return newCallbackErr(next, cbErr)
				}
				i = next
			} else {
				next, rl, err := scanResponseLine(buf, i)
				if err != nil {
					if isNeedMore(err) {
						p.carry = copyTail(buf, i)
						return nil
					}
					p.phase = phaseDead
					return err
				}
				maj, min, _ := parseVersionDigits(rl.version.get(buf)[len("HTTP/"):])
				p.versionMajor, p.versionMinor = maj, min
				p.versionKnown = true
				code, ok := statusCodeValue(rl.status.get(buf))
				if !ok {
					p.phase = phaseDead
					return newErr(KindInvalidStatus, rl.status.off, "status code %d out of range", code)
				}
				p.statusCode = code
				if cbErr := p.sink.onStatus(rl.reason.get(buf)); cbErr != nil {
					p.phase = phaseDead
					return newCallbackErr(next, cbErr)
				}
				i = next
			}
			p.phase = phaseHeaders

		case phaseHeaders:
			done, next, err := p.drainHeaderLines(buf, i, p.recordHeader)
			if err != nil {
				if isNeedMore(err) {
					p.carry = copyTail(buf, next)
					return nil
				}
				p.phase = phaseDead
				return err
			}
			i = next
			if !done {
				p.carry = copyTail(buf, i)
				return nil
			}
			if err := p.finishHeaders(i); err != nil {
				return err
			}

		case phaseBody:
			n, cont, err := p.stepBody(buf, i)
			if err != nil {
				return err
			}
			i = n
			if !cont {
				return nil
			}

		case phaseChunkSize:
			next, size, err := scanChunkSizeLine(buf, i)
			if err != nil {
				if isNeedMore(err) {
					p.carry = copyTail(buf, i)
					return nil
				}
				p.phase = phaseDead
				return err
			}
			i = next
			if cbErr := p.sink.onChunkHeader(); cbErr != nil {
				p.phase = phaseDead
				return newCallbackErr(i, cbErr)
			}
			if size == 0 {
				p.phase = phaseChunkTrailer
			} else {
				p.chunkRemaining = size
				p.phase = phaseChunkData
			}

		case phaseChunkData:
			avail := uint64(len(buf) - i)
			if avail >= p.chunkRemaining {
				n := int(p.chunkRemaining)
				if n > 0 {
					if cbErr := p.sink.onBody(buf[i : i+n]); cbErr != nil {
						p.phase = phaseDead
						return newCallbackErr(i, cbErr)
					}
				}
				i += n
				p.chunkRemaining = 0
				p.phase = phaseChunkCRLF
				continue
			}
			if avail > 0 {
				if cbErr := p.sink.onBody(buf[i:]); cbErr != nil {
					p.phase = phaseDead
					return newCallbackErr(i, cbErr)
				}
			}
			p.chunkRemaining -= avail
			p.carry = nil
			return nil

		case phaseChunkCRLF:
			next, _, ek := scanCRLF(buf, i)
			if ek == errMoreBytes {
				p.carry = copyTail(buf, i)
				return nil
			}
			if ek != errOk {
				p.phase = phaseDead
				return newErr(KindInvalidChunkSize, i, "malformed chunk-data terminator")
			}
			i = next
			if cbErr := p.sink.onChunkComplete(); cbErr != nil {
				p.phase = phaseDead
				return newCallbackErr(i, cbErr)
			}
			p.phase = phaseChunkSize

		case phaseChunkTrailer:
			done, next, err := p.drainHeaderLines(buf, i, p.recordTrailerHeader)
			if err != nil {
				if isNeedMore(err) {
					p.carry = copyTail(buf, next)
					return nil
				}
				p.phase = phaseDead
				return err
			}
			i = next
			if !done {
				p.carry = copyTail(buf, i)
				return nil
			}
			if cbErr := p.sink.onChunkComplete(); cbErr != nil {
				p.phase = phaseDead
				return newCallbackErr(i, cbErr)
			}
			if err := p.completeMessage(i); err != nil {
				return err
			}

		case phaseComplete:
			if i >= len(buf) {
				p.carry = nil
				return nil
			}
			if !p.pipeliningAllowed {
				p.phase = phaseDead
				return newErr(KindDataAfterCompleted, i, "unconsumed bytes after completed message")
			}
			p.resetForNextMessage()

		case phaseUpgraded, phaseDead:
			return nil
		}
	}
}

// drainHeaderLines repeatedly scans header lines starting at buf[i],
// invoking record for each, until the blank line ending the section is
// reached (done == true) or the buffer runs out (err is the errNeedMore
// sentinel).
func (p *MessageParser) drainHeaderLines(buf []byte, i int, record func(name, value []byte, offset int) *Error) (done bool, next int, err *Error) {
	for {
		lineStart := i
		ni, name, value, headersEnded, e := scanHeaderLine(buf, i, &p.scratch)
		if e != nil {
			return false, i, e
		}
		if headersEnded {
			return true, ni, nil
		}
		if cbErr := record(name.get(buf), value, lineStart); cbErr != nil {
			return false, ni, cbErr
		}
		i = ni
	}
}

// recordHeader updates framing-relevant state from a header of the main
// header section and forwards it to the sink (spec §3: every header,
// regardless of kind, reaches OnHeader).
func (p *MessageParser) recordHeader(name, value []byte, offset int) *Error {
	switch classifyHeader(name) {
	case headerContentLength:
		n, ok := parseDecimalUint(value)
		if !ok {
			return newErr(KindInvalidContentLength, offset, "non-numeric Content-Length %q", escapeBytes(value))
		}
		if p.hasContentLengthHeader && p.contentLength != n {
			return newErr(KindInvalidContentLength, offset, "conflicting Content-Length values")
		}
		p.hasContentLengthHeader = true
		p.contentLength = n
	case headerTransferEncoding:
		if transferEncodingIsChunkedFinal(value) {
			p.hasTransferEncodingChunked = true
		}
	case headerConnection:
		if connectionHasToken(value, []byte("close")) {
			p.connCloseSeen = true
		}
		if connectionHasToken(value, []byte("keep-alive")) {
			p.connKeepAliveSeen = true
		}
		if connectionHasToken(value, []byte("upgrade")) {
			p.connUpgradeSeen = true
		}
	case headerUpgrade:
		p.hasUpgradeHeader = true
	}
	if cbErr := p.sink.onHeader(name, value); cbErr != nil {
		return newCallbackErr(offset, cbErr)
	}
	return nil
}

// recordTrailerHeader forwards a chunked-trailer header to the sink without
// touching framing state: trailers arrive after the body-framing decision
// has already been acted on (spec §4.1 chunked-body grammar).
func (p *MessageParser) recordTrailerHeader(name, value []byte, offset int) *Error {
	if cbErr := p.sink.onHeader(name, value); cbErr != nil {
		return newCallbackErr(offset, cbErr)
	}
	return nil
}

// finishHeaders runs once all headers (or the blank line ending an empty
// header section) have been scanned: it resolves keep-alive, upgrade, and
// body framing, fires OnHeadersComplete, and switches to the right next
// phase (spec §4.1 "Framing resolution at headers-complete").
func (p *MessageParser) finishHeaders(i int) error {
	p.headersDone = true
	p.keepAlive = p.computeKeepAlive()
	p.shouldUpgradeFlag = p.computeShouldUpgrade()

	if p.shouldUpgradeFlag {
		if cbErr := p.sink.onHeadersComplete(); cbErr != nil {
			p.phase = phaseDead
			return newCallbackErr(i, cbErr)
		}
		if cbErr := p.sink.onMessageComplete(); cbErr != nil {
			p.phase = phaseDead
			return newCallbackErr(i, cbErr)
		}
		p.phase = phaseUpgraded
		return &UpgradeError{Offset: i}
	}

	if fErr := p.resolveFraming(); fErr != nil {
		p.phase = phaseDead
		return fErr
	}
	if cbErr := p.sink.onHeadersComplete(); cbErr != nil {
		p.phase = phaseDead
		return newCallbackErr(i, cbErr)
	}

	switch p.framing {
	case framingNone:
		return p.completeMessage(i)
	case framingLengthDelimited:
		p.bytesRemaining = p.contentLength
		if p.bytesRemaining == 0 {
			return p.completeMessage(i)
		}
		p.phase = phaseBody
	case framingChunked:
		p.phase = phaseChunkSize
	case framingEOF:
		p.phase = phaseBody
	}
	return nil
}

// stepBody handles phaseBody for both length-delimited and EOF framing
// (chunked framing has its own phases). It returns the new offset and
// whether the caller's loop should continue (cont == false means "return
// nil to the FeedData caller, wait for more data").
func (p *MessageParser) stepBody(buf []byte, i int) (next int, cont bool, err error) {
	if p.framing == framingEOF {
		if i < len(buf) {
			chunk := buf[i:]
			if cbErr := p.sink.onBody(chunk); cbErr != nil {
				p.phase = phaseDead
				return i, false, newCallbackErr(i, cbErr)
			}
			i = len(buf)
		}
		p.carry = nil
		return i, false, nil
	}

	avail := uint64(len(buf) - i)
	if avail >= p.bytesRemaining {
		n := int(p.bytesRemaining)
		if n > 0 {
			if cbErr := p.sink.onBody(buf[i : i+n]); cbErr != nil {
				p.phase = phaseDead
				return i, false, newCallbackErr(i, cbErr)
			}
		}
		i += n
		p.bytesRemaining = 0
		if err := p.completeMessage(i); err != nil {
			return i, false, err
		}
		return i, true, nil
	}
	if avail > 0 {
		if cbErr := p.sink.onBody(buf[i:]); cbErr != nil {
			p.phase = phaseDead
			return i, false, newCallbackErr(i, cbErr)
		}
	}
	p.bytesRemaining -= avail
	p.carry = nil
	return len(buf), false, nil
}

// completeMessage fires OnMessageComplete and moves to phaseComplete,
// recording whether a following pipelined message is permitted on this
// same parser (spec §3 should_keep_alive / §8 "DataAfterCompleted unless
// the connection semantics permit a following message").
func (p *MessageParser) completeMessage(i int) error {
	if cbErr := p.sink.onMessageComplete(); cbErr != nil {
		p.phase = phaseDead
		return newCallbackErr(i, cbErr)
	}
	p.pipeliningAllowed = p.keepAlive
	p.phase = phaseComplete
	return nil
}

// resolveFraming implements spec §4.1's priority list, generalizing the
// teacher's PMsg.BodyType (parse_msg.go), which encodes the same priority
// order (chunked over Content-Length over no-body cases over EOF) for SIP
// messages.
func (p *MessageParser) resolveFraming() *Error {
	if p.hasTransferEncodingChunked {
		p.framing = framingChunked
		return nil
	}
	if p.hasContentLengthHeader {
		p.framing = framingLengthDelimited
		return nil
	}
	if !p.isRequest {
		if (p.statusCode > 99 && p.statusCode < 200) ||
			p.statusCode == 204 || p.statusCode == 304 ||
			p.lastReqMethod == MethodHead {
			p.framing = framingNone
			return nil
		}
	}
	if p.isRequest {
		p.framing = framingNone
		return nil
	}
	p.framing = framingEOF
	return nil
}

func (p *MessageParser) computeKeepAlive() bool {
	if p.connCloseSeen {
		return false
	}
	if p.versionMajor == 1 && p.versionMinor == 0 {
		return p.connKeepAliveSeen
	}
	return true
}

func (p *MessageParser) computeShouldUpgrade() bool {
	if !p.isRequest {
		return p.statusCode == 101 ||
			(p.lastReqMethod == MethodConnect && p.statusCode >= 200 && p.statusCode <= 299)
	}
	return p.connUpgradeSeen && p.hasUpgradeHeader
}

// resetForNextMessage clears per-message state so the same MessageParser
// can parse a pipelined follow-on message (spec §8 scenario pipelining).
func (p *MessageParser) resetForNextMessage() {
	*p = MessageParser{
		isRequest:     p.isRequest,
		sink:          p.sink,
		phase:         phaseIdle,
		scratch:       p.scratch[:0],
		lastReqMethod: p.lastReqMethod,
	}
}

// HTTPVersion reports the parsed HTTP-version as "major.minor", once the
// start-line has been fully parsed.
func (p *MessageParser) HTTPVersion() (string, bool) {
	if !p.versionKnown {
		return "", false
	}
	return fmt.Sprintf("%d.%d", p.versionMajor, p.versionMinor), true
}

// Method reports the parsed request method, once the start-line has been
// fully parsed. Always false on a response parser.
func (p *MessageParser) Method() (Method, bool) {
	if !p.isRequest || !p.versionKnown {
		return MethodUnknown, false
	}
	return p.method, true
}

// StatusCode reports the parsed response status code, once the start-line
// has been fully parsed. Always false on a request parser.
func (p *MessageParser) StatusCode() (int, bool) {
	if p.isRequest || !p.versionKnown {
		return 0, false
	}
	return p.statusCode, true
}

// ShouldKeepAlive reports whether the connection should remain open after
// this message, per spec §3. False until headers are complete.
func (p *MessageParser) ShouldKeepAlive() bool {
	return p.headersDone && p.keepAlive
}

// ShouldUpgrade reports whether headers indicated a protocol upgrade.
// False until headers are complete.
func (p *MessageParser) ShouldUpgrade() bool {
	return p.headersDone && p.shouldUpgradeFlag
}

func copyTail(buf []byte, i int) []byte {
	if i >= len(buf) {
		return nil
	}
	out := make([]byte, len(buf)-i)
	copy(out, buf[i:])
	return out
}

func parseDecimalUint(b []byte) (uint64, bool) {
	if len(b) == 0 {
		return 0, false
	}
	var v uint64
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		d := uint64(c - '0')
		if v > (1<<64-1-d)/10 {
			return 0, false
		}
		v = v*10 + d
	}
	return v, true
}

// adjustOffset rewrites an error's Offset, which run() reports relative to
// the internal carry+data buffer, into an offset relative to the slice the
// caller actually passed to this FeedData call (spec §4.1 UpgradeError
// contract; applied uniformly to every error kind for consistency).
func adjustOffset(err error, base int) error {
	if err == nil {
		return nil
	}
	switch e := err.(type) {
	case *Error:
		e.Offset -= base
		if e.Offset < 0 {
			e.Offset = 0
		}
		return e
	case *UpgradeError:
		e.Offset -= base
		if e.Offset < 0 {
			e.Offset = 0
		}
		return e
	default:
		return err
	}
}
