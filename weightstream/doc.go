// Package weightstream sequences tensor reads over an encoded weight blob,
// hiding block boundaries from the numeric consumer.
//
// A Stream walks the blob the way the compute pipeline asks for it: one
// tensor at a time, in blob order (convolution weights, then batch-norm
// scale, then batch-norm bias, layer by layer). The caller states how many
// elements it expects; the stream reads the tensor's record header, decodes
// its blocks into a fixed scratch buffer and hands back the leading view.
//
// The backing store is any io.ReaderAt: bytes.Reader for an in-memory blob,
// or a spiflash.Reader when the blob lives in external flash. The stream
// itself never cares which.
//
// # Usage
//
//	stream := weightstream.New(bytes.NewReader(blob))
//	if err := stream.Reset(ctx); err != nil {
//	    return err
//	}
//
//	conv1, err := stream.ReadTensor(ctx, 432)   // 16x3x3x3 kernel
//	if err != nil {
//	    return err
//	}
//
// Tensor views alias the stream's scratch buffer and stay valid only until
// the next ReadTensor or Reset call; copy them out if they must live longer.
//
// # Resource Cap
//
// The scratch buffer holds 512 elements, mirroring the fixed decode buffer
// of the embedded consumer. A tensor whose blocks would exceed it fails with
// OverrunError; the stream never truncates silently.
package weightstream
