// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ulq

import "code.hybscloud.com/atomix"

// node is a single link in both the main list and the freelist. A node is
// never reachable from both lists at once: it transitions main list →
// freelist → main list as the queue recycles it (see freelist.go).
type node[T any] struct {
	data T
	next atomix.Pointer[node[T]]
}
