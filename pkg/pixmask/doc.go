/*
Package pixmask applies a reversible XOR mask to the RGB channels of an image.

Note that this is NOT encryption, since it is trivially reversible with a key space of only 256 values.
It's useful for making an image unrecognizable at a glance, and nothing more.

# How it works:

A single byte Key is XOR'd with the R, G, and B channel of every pixel in a PixelBuffer.
Alpha is not part of the mask, and a PixelBuffer created with FromImage has already discarded it.

XOR with the same byte twice is the identity, so there is only one operation.
Apply (or Transform) is used to mask an image, and the same call with the same Key restores it exactly.
A Key of 0 leaves the image unchanged.

# Important note:

The same Key must be provided to accurately reverse the process.
Images encoded with a lossy format (like JPEG) after masking will not be restored byte-for-byte, since the encoder alters the masked pixel values.
*/
package pixmask
