// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/sha256"
	"encoding/hex"
	"io/ioutil"
	"time"

	cache "github.com/patrickmn/go-cache"
)

const (
	defaultTimeout    = 1 * time.Minute
	defaultExpiration = 2 * time.Minute
)

// replayCache - results keyed by the digest of the script content
// so that events which do not change the file skip the replay
type replayCache struct {
	cache *cache.Cache
}

func newReplayCache() *replayCache {
	return &replayCache{
		cache: cache.New(defaultTimeout, defaultExpiration),
	}
}

// digest - key for the current content of a file
func digest(fileName string) (string, error) {
	b, err := ioutil.ReadFile(fileName)
	if nil != err {
		return "", err
	}
	d := sha256.Sum256(b)
	return hex.EncodeToString(d[:]), nil
}

func (c *replayCache) Get(key string) (*replayResult, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, false
	}
	return obj.(*replayResult), true
}

func (c *replayCache) Set(key string, result *replayResult) {
	c.cache.Set(key, result, defaultExpiration)
}

// load - replay a script file, reusing the cached result when the
// content digest has been seen before
// returns the result, the content digest and whether the cache was used
func (c *replayCache) load(fileName string) (*replayResult, string, bool, error) {
	key, err := digest(fileName)
	if nil != err {
		return nil, "", false, err
	}
	if result, found := c.Get(key); found {
		return result, key, true, nil
	}

	script, err := readScript(fileName)
	if nil != err {
		return nil, "", false, err
	}
	result, err := replay(script)
	if nil != err {
		return nil, "", false, err
	}
	c.Set(key, result)
	return result, key, false, nil
}
