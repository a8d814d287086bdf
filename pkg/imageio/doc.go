// Package imageio reads image files into a pixmask.PixelBuffer and writes them back out, choosing the format by file extension.
package imageio
