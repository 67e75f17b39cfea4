package spectra

import (
	hdf5 "github.com/jmbenlloch/go-hdf5"
)

// SpectrumParamHDF5 is one named scalar of spectrum metadata.
type SpectrumParamHDF5 struct {
	param [STRLEN]byte
	value float64
}

// SpectrumNameHDF5 holds the spectrum name as a fixed-length string.
type SpectrumNameHDF5 struct {
	name [STRLEN]byte
}

const STRLEN = 64

func convertToHdf5String(s string) [STRLEN]byte {
	var byteArray [STRLEN]byte
	copy(byteArray[:], s)
	return byteArray
}

func openFile(fname string) *hdf5.File {
	f, err := hdf5.CreateFile(fname, hdf5.F_ACC_TRUNC)
	if err != nil {
		panic(err)
	}
	return f
}

func createGroup(file *hdf5.File, groupName string) *hdf5.Group {
	g, err := file.CreateGroup(groupName)
	if err != nil {
		panic(err)
	}
	return g
}

func createTable(group *hdf5.Group, name string, datatype interface{}) *hdf5.Dataset {
	dims := []uint{0}
	unlimitedDims := -1 // H5S_UNLIMITED is -1L
	maxDims := []uint{uint(unlimitedDims)}
	fileSpace, err := hdf5.CreateSimpleDataspace(dims, maxDims)
	if err != nil {
		panic(err)
	}

	plist, err := hdf5.NewPropList(hdf5.P_DATASET_CREATE)
	if err != nil {
		panic(err)
	}
	chunks := []uint{1024}
	plist.SetChunk(chunks)
	plist.SetDeflate(configuration.CompressionLevel)

	dtype, err := hdf5.NewDatatypeFromValue(datatype)
	if err != nil {
		panic(err)
	}

	dset, err := group.CreateDatasetWith(name, dtype, fileSpace, plist)
	if err != nil {
		panic(err)
	}
	return dset
}

// create1dArray creates a fixed-size float64 dataset, used for the bin
// edges of one axis.
func create1dArray(group *hdf5.Group, name string, n int) *hdf5.Dataset {
	dims := []uint{uint(n)}
	fileSpace, err := hdf5.CreateSimpleDataspace(dims, nil)
	if err != nil {
		panic(err)
	}

	plist, err := hdf5.NewPropList(hdf5.P_DATASET_CREATE)
	if err != nil {
		panic(err)
	}
	plist.SetChunk(dims)
	plist.SetDeflate(configuration.CompressionLevel)

	dset, err := group.CreateDatasetWith(name, hdf5.T_NATIVE_DOUBLE, fileSpace, plist)
	if err != nil {
		panic(err)
	}
	return dset
}

// create3dArray creates the fixed-size float64 dataset holding the
// spectrum bin contents, chunked one energy slice at a time.
func create3dArray(group *hdf5.Group, name string, nE int, nR int, nT int) *hdf5.Dataset {
	dims := []uint{uint(nE), uint(nR), uint(nT)}
	fileSpace, err := hdf5.CreateSimpleDataspace(dims, nil)
	if err != nil {
		panic(err)
	}

	plist, err := hdf5.NewPropList(hdf5.P_DATASET_CREATE)
	if err != nil {
		panic(err)
	}
	chunks := []uint{1, uint(nR), uint(nT)}
	plist.SetChunk(chunks)
	plist.SetDeflate(configuration.CompressionLevel)

	dset, err := group.CreateDatasetWith(name, hdf5.T_NATIVE_DOUBLE, fileSpace, plist)
	if err != nil {
		panic(err)
	}
	return dset
}

func writeEntryToTable[T any](dataset *hdf5.Dataset, data T, offset int) {
	array := []T{data}
	writeArrayToTable(dataset, &array, offset)
}

func writeArrayToTable[T any](dataset *hdf5.Dataset, data *[]T, offset int) {
	length := uint(len(*data))
	dims := []uint{length}
	dataspace, err := hdf5.CreateSimpleDataspace(dims, nil)
	if err != nil {
		panic(err)
	}

	newsize := []uint{uint(offset) + length}
	dataset.Resize(newsize)
	filespace := dataset.Space()

	start := []uint{uint(offset)}
	count := []uint{length}
	filespace.SelectHyperslab(start, nil, count, nil)

	if err := dataset.WriteSubset(data, dataspace, filespace); err != nil {
		panic(err)
	}

	dataspace.Close()
	filespace.Close()
}
