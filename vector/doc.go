// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package vector implements a growable contiguous-storage container whose
// backing block comes from a pluggable memory.Allocator.
//
// A Vector owns exactly one storage block at a time. Slots [0, Len()) hold
// live elements; slots [Len(), Cap()) are uninitialized and never read.
// Raw storage is only ever obtained from and returned to the allocator;
// element construction and destruction are handled by the vector itself,
// which is what allows a block to be partially populated and multi-step
// mutations to roll back without leaking.
//
// Vectors are not safe for concurrent use. Any operation that reallocates
// or shifts element positions (a growing insert, erase, shrink or assign)
// invalidates slices previously returned by Data, element pointers, and
// iterators; using them afterwards is a precondition violation that is not
// detected at runtime.
//
// Exception-safety levels follow the container convention: an operation
// documented with the strong guarantee either completes or leaves the
// vector exactly as it was; one with the basic guarantee may leave it in a
// valid but unspecified state when an element operation fails. Appends,
// Reserve and Clone are strong; interior Insert and Erase degrade to basic
// when the element type's copy or move hooks can fail.
package vector
