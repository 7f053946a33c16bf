// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package yatm

// Version is the yatm release, recorded in new workspaces as yatm_version.
const Version = "0.1.0"
