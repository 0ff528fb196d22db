// Package vwb reads and writes VWB weight blobs, the persisted container
// for BlockDialect-Lite encoded CNN weights.
//
// # Blob Format
//
// A blob is a 16-byte header followed by tensor records:
//
//	Header (all fields little-endian uint32):
//	  [0:4]   magic: 0x56574230 ("VWB0") or 0x56574231 ("VWB1")
//	  [4:8]   payload size (bytes after the header)
//	  [8:12]  block size (32 for VWB1; opaque for VWB0 producers)
//	  [12:16] reserved
//
//	Tensor record:
//	  [0:4]   element count (little-endian uint32)
//	  [4:8]   block count (little-endian uint32)
//	  [8:..]  block count x 18-byte BlockDialect-Lite blocks
//	  zero padding to the next 4-byte boundary
//
// Tensor order is the consumer call order and is not rediscoverable from
// the data: per layer, convolution weights, then batch-norm scale, then
// batch-norm bias; fully-connected weights and bias follow the last layer.
//
// # Writing
//
// Build a blob with Writer, which encodes each tensor into blocks and
// handles padding and the header:
//
//	w := vwb.NewWriter()
//	if err := w.AddTensor(convWeights); err != nil { ... }
//	if err := w.AddTensor(bnScale); err != nil { ... }
//	blob, err := w.Bytes()
//
// Float tensors are quantized to int8 with symmetric per-tensor scaling
// before encoding (AddTensorFloat32, AddTensorFloat16).
//
// # Reading
//
// Parse decodes a whole blob eagerly, for host-side tools:
//
//	blob, err := vwb.Parse("weights.vwb")
//	for i, tensor := range blob.Tensors {
//	    fmt.Printf("tensor %d: %d elements in %d blocks\n",
//	        i, tensor.Elements, tensor.Blocks)
//	}
//
// Embedded-style sequential consumption belongs to package weightstream,
// which streams records without holding the whole blob.
package vwb
