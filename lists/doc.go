/*
Package lists provides generic containers with explicit ownership rules:

  - [DynamicArray]: contiguous, index-addressed storage with managed capacity,
    sorted insertion, duplicate elimination and [Quickselect].
  - [SinglyLinkedList]: sentinel-headed chain with a tail pointer, O(1) append,
    merge in O(len(other)), stable sorted merge and in-place reversal.
  - [CircularList]: sentinel-closed doubly linked ring with O(k) rotation.

# Ownership

Every container owns its structure (buffer, nodes, sentinel). It owns payloads
only when built with [WithDestroy]: the destroy function then runs once for
each payload the container discards. Without it, the caller keeps ownership.

# Errors

Misuse (bad index, nil or foreign node, removing the sentinel, empty
container) returns a sentinel error such as [ErrIndexOutOfBounds] and leaves
the container unchanged. [ErrAllocationFailed] reports a buffer that could not
be allocated. Rejections are also reported to the logger set with [WithLogger].

The containers are not safe for concurrent use.
*/
package lists
