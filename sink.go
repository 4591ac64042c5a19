// Copyright 2026 The httptools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package httptools

// Sink is the capability set a caller-supplied event receiver may expose.
// Per spec §4.1 and §9 ("Sink as capability set, not inheritance"), the
// parser does not require a single fat interface: it probes, once at
// construction, which of these small interfaces the value passed to
// NewRequestParser/NewResponseParser satisfies, and treats a missing
// method as a no-op (spec §8 property 7, "callback isolation"). Sink may be
// nil, in which case every event is a no-op.
//
// Byte slices passed to every method below are borrowed: valid only for
// the duration of the call (spec §4.1 "zero-copy contract"). Copy them if
// they must outlive the call.
type Sink = interface{}

// MessageBeginHandler receives the message-begin event.
type MessageBeginHandler interface {
	OnMessageBegin() error
}

// URLHandler receives the request-target event (requests only).
type URLHandler interface {
	OnURL(url []byte) error
}

// StatusHandler receives the reason-phrase event (responses only).
type StatusHandler interface {
	OnStatus(reason []byte) error
}

// HeaderHandler receives one event per header field, including trailers.
type HeaderHandler interface {
	OnHeader(name, value []byte) error
}

// HeadersCompleteHandler receives the end-of-headers event.
type HeadersCompleteHandler interface {
	OnHeadersComplete() error
}

// BodyHandler receives zero or more body chunk events.
type BodyHandler interface {
	OnBody(chunk []byte) error
}

// ChunkHeaderHandler receives an event after each chunk-size line of a
// chunked body is parsed, before that chunk's OnBody calls.
type ChunkHeaderHandler interface {
	OnChunkHeader() error
}

// ChunkCompleteHandler receives an event after each chunk's trailing CRLF,
// following that chunk's OnBody calls.
type ChunkCompleteHandler interface {
	OnChunkComplete() error
}

// MessageCompleteHandler receives the end-of-message event.
type MessageCompleteHandler interface {
	OnMessageComplete() error
}

// sinkCaps caches which optional methods a Sink implements, probed once at
// construction time to avoid a type assertion per event on the hot path -
// the same "probe once" strategy spec §9 calls for.
type sinkCaps struct {
	messageBegin     MessageBeginHandler
	url              URLHandler
	status           StatusHandler
	header           HeaderHandler
	headersComplete  HeadersCompleteHandler
	body             BodyHandler
	chunkHeader      ChunkHeaderHandler
	chunkComplete    ChunkCompleteHandler
	messageComplete  MessageCompleteHandler
}

func probeSink(s Sink) sinkCaps {
	var c sinkCaps
	if s == nil {
		return c
	}
	c.messageBegin, _ = s.(MessageBeginHandler)
	c.url, _ = s.(URLHandler)
	c.status, _ = s.(StatusHandler)
	c.header, _ = s.(HeaderHandler)
	c.headersComplete, _ = s.(HeadersCompleteHandler)
	c.body, _ = s.(BodyHandler)
	c.chunkHeader, _ = s.(ChunkHeaderHandler)
	c.chunkComplete, _ = s.(ChunkCompleteHandler)
	c.messageComplete, _ = s.(MessageCompleteHandler)
	return c
}

func (c *sinkCaps) onMessageBegin() error {
	if c.messageBegin == nil {
		return nil
	}
	return c.messageBegin.OnMessageBegin()
}

func (c *sinkCaps) onURL(u []byte) error {
	if c.url == nil {
		return nil
	}
	return c.url.OnURL(u)
}

func (c *sinkCaps) onStatus(reason []byte) error {
	if c.status == nil {
		return nil
	}
	return c.status.OnStatus(reason)
}

func (c *sinkCaps) onHeader(name, value []byte) error {
	if c.header == nil {
		return nil
	}
	return c.header.OnHeader(name, value)
}

func (c *sinkCaps) onHeadersComplete() error {
	if c.headersComplete == nil {
		return nil
	}
	return c.headersComplete.OnHeadersComplete()
}

func (c *sinkCaps) onBody(chunk []byte) error {
	if c.body == nil {
		return nil
	}
	return c.body.OnBody(chunk)
}

func (c *sinkCaps) onChunkHeader() error {
	if c.chunkHeader == nil {
		return nil
	}
	return c.chunkHeader.OnChunkHeader()
}

func (c *sinkCaps) onChunkComplete() error {
	if c.chunkComplete == nil {
		return nil
	}
	return c.chunkComplete.OnChunkComplete()
}

func (c *sinkCaps) onMessageComplete() error {
	if c.messageComplete == nil {
		return nil
	}
	return c.messageComplete.OnMessageComplete()
}
