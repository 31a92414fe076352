// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const script1 = `return { operations = { { op = "insert", value = 1 } } }`
const script2 = `return { operations = { { op = "insert", value = 1 }, { op = "insert", value = 2 } } }`

func TestReplayCache(t *testing.T) {
	fileName := writeScript(t, script1)
	results := newReplayCache()

	result, key1, cached, err := results.load(fileName)
	assert.Nil(t, err)
	assert.False(t, cached, "first load cached")
	assert.Equal(t, 1, result.Size)

	result, again, cached, err := results.load(fileName)
	assert.Nil(t, err)
	assert.True(t, cached, "unchanged content replayed")
	assert.Equal(t, key1, again, "digest changed for the same content")
	assert.Equal(t, 1, result.Size)

	assert.Nil(t, ioutil.WriteFile(fileName, []byte(script2), 0600))
	result, key2, cached, err := results.load(fileName)
	assert.Nil(t, err)
	assert.False(t, cached, "changed content served from cache")
	assert.NotEqual(t, key1, key2, "same digest for different content")
	assert.Equal(t, 2, result.Size)

	_, _, _, err = results.load(fileName + ".missing")
	assert.NotNil(t, err, "missing file")
}

// buffer shared between the watch goroutine and the test
type lockedBuffer struct {
	sync.Mutex
	b bytes.Buffer
}

func (l *lockedBuffer) Write(p []byte) (int, error) {
	l.Lock()
	defer l.Unlock()
	return l.b.Write(p)
}

func (l *lockedBuffer) String() string {
	l.Lock()
	defer l.Unlock()
	return l.b.String()
}

func (l *lockedBuffer) valueLines() []string {
	lines := []string{}
	for _, line := range strings.Split(l.String(), "\n") {
		if strings.HasPrefix(line, "values:") {
			lines = append(lines, line)
		}
	}
	return lines
}

// write a new version of the file with a rename so the watcher never
// sees a half written file
func replaceFile(t *testing.T, fileName string, content string) {
	tmp := fileName + ".tmp"
	if err := ioutil.WriteFile(tmp, []byte(content), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	if err := os.Rename(tmp, fileName); nil != err {
		t.Fatalf("rename error: %s", err)
	}
}

func waitForValues(t *testing.T, out *lockedBuffer, n int) {
	deadline := time.Now().Add(5 * time.Second)
	for len(out.valueLines()) < n {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d results, output:\n%s", n, out.String())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestWatchPrintsRevertedScript(t *testing.T) {
	fileName := writeScript(t, script1)

	out := &lockedBuffer{}
	m := &metadata{
		w: out,
		e: ioutil.Discard,
	}

	results := newReplayCache()
	result, key, _, err := results.load(fileName)
	if !assert.Nil(t, err, "initial load") {
		return
	}
	assert.Nil(t, printResult(out, result, false, false))

	watcher, err := newFileWatcher(fileName)
	if !assert.Nil(t, err, "new watcher") {
		return
	}
	defer watcher.Close()

	stop := make(chan os.Signal, 1)
	done := make(chan error, 1)
	go func() {
		done <- watchScript(m, fileName, key, results, watcher, false, stop)
	}()

	replaceFile(t, fileName, script2)
	waitForValues(t, out, 2)

	// back to the first content, already in the cache
	replaceFile(t, fileName, script1)
	waitForValues(t, out, 3)

	stop <- syscall.SIGINT
	select {
	case err := <-done:
		assert.Nil(t, err, "watch error")
	case <-time.After(5 * time.Second):
		t.Fatalf("watch did not stop")
	}

	expected := []string{
		"values:   [1]",
		"values:   [1 2]",
		"values:   [1]",
	}
	assert.Equal(t, expected, out.valueLines(), "wrong results printed")
}

func TestWatchSkipsSameContent(t *testing.T) {
	fileName := writeScript(t, script1)

	out := &lockedBuffer{}
	m := &metadata{
		w: out,
		e: ioutil.Discard,
	}

	results := newReplayCache()
	_, key, _, err := results.load(fileName)
	if !assert.Nil(t, err, "initial load") {
		return
	}

	watcher, err := newFileWatcher(fileName)
	if !assert.Nil(t, err, "new watcher") {
		return
	}
	defer watcher.Close()

	stop := make(chan os.Signal, 1)
	done := make(chan error, 1)
	go func() {
		done <- watchScript(m, fileName, key, results, watcher, false, stop)
	}()

	// rewrite identical content, then a real change to know the
	// first event has been handled
	replaceFile(t, fileName, script1)
	time.Sleep(100 * time.Millisecond)
	replaceFile(t, fileName, script2)
	waitForValues(t, out, 1)

	stop <- syscall.SIGINT
	<-done

	assert.Equal(t, []string{"values:   [1 2]"}, out.valueLines(), "unchanged content printed")
}

func TestFileWatcher(t *testing.T) {
	fileName := writeScript(t, script1)

	w, err := newFileWatcher(fileName)
	if !assert.Nil(t, err, "new watcher") {
		return
	}
	defer w.Close()

	assert.Nil(t, ioutil.WriteFile(fileName, []byte(script2), 0600))
	select {
	case <-w.change:
	case <-time.After(5 * time.Second):
		t.Fatalf("no change event")
	}

	assert.Nil(t, os.Remove(fileName))
	select {
	case <-w.remove:
	case <-time.After(5 * time.Second):
		t.Fatalf("no remove event")
	}
}

func TestFileWatcherIgnoresOtherFiles(t *testing.T) {
	fileName := writeScript(t, script1)

	w, err := newFileWatcher(fileName)
	if !assert.Nil(t, err, "new watcher") {
		return
	}
	defer w.Close()

	assert.Nil(t, ioutil.WriteFile(fileName+".other", []byte(script2), 0600))
	select {
	case <-w.change:
		t.Fatalf("change event for another file")
	case <-time.After(100 * time.Millisecond):
	}
}
