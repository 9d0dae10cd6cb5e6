/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package imagefile reads the input image and writes the edited result next to it.
// The output lives in the same directory as the input, named <name>_blurred<ext>, and is
// encoded in the format its extension names. Writes are transactional: the image is
// encoded in memory, written to a temp file in the destination directory and renamed over the target.
// Only formats that can be both decoded and encoded are accepted: png, jpeg, gif, bmp, tiff.
package imagefile
