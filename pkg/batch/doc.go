/*
Package batch applies a pixmask.Key to a list of image files.

Files are processed one at a time. A file that fails to decode or encode is recorded in the Report and the rest of the batch continues.
Output files are named after the input, with a suffix showing the Direction of the operation:

	photo.png -> photo_encrypted.png -> photo_encrypted_decrypted.png

The suffix is only a label, since both directions apply the same transform.
*/
package batch
