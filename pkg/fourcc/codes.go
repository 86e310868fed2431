package fourcc

// Well-known codes from the RIFF and ISO base media families, for
// callers tagging or matching common chunk types.
var (
	// RIFF containers (WAV, AVI)
	Riff = FourCC{'R', 'I', 'F', 'F'}
	Wave = FourCC{'W', 'A', 'V', 'E'}
	Avi  = FourCC{'A', 'V', 'I', ' '}
	Fmt  = FourCC{'f', 'm', 't', ' '}
	Data = FourCC{'d', 'a', 't', 'a'}
	List = FourCC{'L', 'I', 'S', 'T'}

	// ISO base media (MP4, MOV)
	Ftyp = FourCC{'f', 't', 'y', 'p'}
	Moov = FourCC{'m', 'o', 'o', 'v'}
	Mdat = FourCC{'m', 'd', 'a', 't'}
	Free = FourCC{'f', 'r', 'e', 'e'}

	// Sample entries
	Avc1 = FourCC{'a', 'v', 'c', '1'}
	Hvc1 = FourCC{'h', 'v', 'c', '1'}
	Mp4a = FourCC{'m', 'p', '4', 'a'}
)
