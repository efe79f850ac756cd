// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ulq

// pad is cache-line padding to prevent false sharing between fields that
// are written by different sides of a producer/consumer pair.
type pad [64]byte
