// Copyright 2021 The dispatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package timeout provides flexible policies for setting the timeout of
// each transport call made by a transport engine.
//
// The dispatch pipeline itself has no notion of time; timeouts belong to
// the engine. Install a Policy on engine.HTTP or the resty engine.
package timeout
