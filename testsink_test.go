// Copyright 2026 The httptools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package httptools

import "fmt"

// recordingSink implements every optional Sink interface and records each
// event as a copy (the zero-copy contract means the borrowed slices must be
// copied to survive past the callback), so tests can assert on the full
// event trace a MessageParser produced.
type recordingSink struct {
	events []string

	url       string
	status    string
	headers   []headerPair
	bodies    []string
	failAfter int // if > 0, OnHeader fails once this many headers have been seen

	messageBegins, headersCompletes, chunkHeaders, chunkCompletes, messageCompletes int
}

type headerPair struct{ Name, Value string }

func (s *recordingSink) OnMessageBegin() error {
	s.messageBegins++
	s.events = append(s.events, "message_begin")
	return nil
}

func (s *recordingSink) OnURL(u []byte) error {
	s.url = string(u)
	s.events = append(s.events, "url:"+s.url)
	return nil
}

func (s *recordingSink) OnStatus(reason []byte) error {
	s.status = string(reason)
	s.events = append(s.events, "status:"+s.status)
	return nil
}

func (s *recordingSink) OnHeader(name, value []byte) error {
	s.headers = append(s.headers, headerPair{string(name), string(value)})
	s.events = append(s.events, fmt.Sprintf("header:%s=%s", name, value))
	if s.failAfter > 0 && len(s.headers) == s.failAfter {
		return errBoom
	}
	return nil
}

func (s *recordingSink) OnHeadersComplete() error {
	s.headersCompletes++
	s.events = append(s.events, "headers_complete")
	return nil
}

func (s *recordingSink) OnBody(chunk []byte) error {
	s.bodies = append(s.bodies, string(chunk))
	s.events = append(s.events, "body:"+string(chunk))
	return nil
}

func (s *recordingSink) OnChunkHeader() error {
	s.chunkHeaders++
	s.events = append(s.events, "chunk_header")
	return nil
}

func (s *recordingSink) OnChunkComplete() error {
	s.chunkCompletes++
	s.events = append(s.events, "chunk_complete")
	return nil
}

func (s *recordingSink) OnMessageComplete() error {
	s.messageCompletes++
	s.events = append(s.events, "message_complete")
	return nil
}

// fullBody concatenates every OnBody call the sink has seen so far.
func (s *recordingSink) fullBody() string {
	var out string
	for _, b := range s.bodies {
		out += b
	}
	return out
}

type boomError struct{}

func (boomError) Error() string { return "boom" }

var errBoom error = boomError{}
