package pgcore

// The metadata queries below read the engine's compiled-in schema. They are
// pure functions of the loaded library: no model is involved and nothing is
// mutated. They exist so a host can lay out byte buffers matching the
// engine's exact binary structure without compiling against its headers.

// MetaNDatasets returns the number of datasets in the engine schema.
func (c *Core) MetaNDatasets() (int64, error) {
	return c.callIdx("meta_n_datasets")
}

// MetaDatasetName returns the name of dataset idx.
func (c *Core) MetaDatasetName(idx int64) (string, error) {
	return c.callStr("meta_dataset_name", idx)
}

// MetaNComponents returns the number of components in a dataset.
func (c *Core) MetaNComponents(dataset string) (int64, error) {
	return c.callIdx("meta_n_components", dataset)
}

// MetaComponentName returns the name of component idx within a dataset.
func (c *Core) MetaComponentName(dataset string, idx int64) (string, error) {
	return c.callStr("meta_component_name", dataset, idx)
}

// MetaComponentSize returns the byte size of one element of a component.
func (c *Core) MetaComponentSize(dataset, component string) (int64, error) {
	return c.callIdx("meta_component_size", dataset, component)
}

// MetaComponentAlignment returns the alignment requirement of a component's
// native layout.
func (c *Core) MetaComponentAlignment(dataset, component string) (int64, error) {
	return c.callIdx("meta_component_alignment", dataset, component)
}

// MetaNAttributes returns the number of attributes of a component.
func (c *Core) MetaNAttributes(dataset, component string) (int64, error) {
	return c.callIdx("meta_n_attributes", dataset, component)
}

// MetaAttributeName returns the name of attribute idx of a component.
func (c *Core) MetaAttributeName(dataset, component string, idx int64) (string, error) {
	return c.callStr("meta_attribute_name", dataset, component, idx)
}

// MetaAttributeCType returns the native storage type of an attribute, as
// text (for example "double" or "int32_t").
func (c *Core) MetaAttributeCType(dataset, component, attribute string) (string, error) {
	return c.callStr("meta_attribute_ctype", dataset, component, attribute)
}

// MetaAttributeOffset returns the byte offset of an attribute within its
// component's native layout. Offsets are always strictly less than the
// component size.
func (c *Core) MetaAttributeOffset(dataset, component, attribute string) (int64, error) {
	return c.callIdx("meta_attribute_offset", dataset, component, attribute)
}

// IsLittleEndian reports the endianness the engine was compiled for.
func (c *Core) IsLittleEndian() (bool, error) {
	return c.callBool("is_little_endian")
}

// AttributeMeta is one attribute entry of an assembled schema.
type AttributeMeta struct {
	Name   string
	CType  string
	Offset int64
}

// ComponentMeta is one component entry of an assembled schema.
type ComponentMeta struct {
	Name       string
	Size       int64
	Alignment  int64
	Attributes []AttributeMeta
}

// DatasetMeta is one dataset entry of an assembled schema.
type DatasetMeta struct {
	Name       string
	Components []ComponentMeta
}

// Schema walks the full metadata catalog of the loaded engine. It is a
// convenience over the individual queries; the result is a snapshot, though
// the underlying schema never changes for a loaded library.
func (c *Core) Schema() ([]DatasetMeta, error) {
	nDatasets, err := c.MetaNDatasets()
	if err != nil {
		return nil, err
	}
	datasets := make([]DatasetMeta, 0, nDatasets)
	for i := int64(0); i < nDatasets; i++ {
		dsName, err := c.MetaDatasetName(i)
		if err != nil {
			return nil, err
		}
		ds := DatasetMeta{Name: dsName}

		nComponents, err := c.MetaNComponents(dsName)
		if err != nil {
			return nil, err
		}
		for j := int64(0); j < nComponents; j++ {
			compName, err := c.MetaComponentName(dsName, j)
			if err != nil {
				return nil, err
			}
			comp := ComponentMeta{Name: compName}
			if comp.Size, err = c.MetaComponentSize(dsName, compName); err != nil {
				return nil, err
			}
			if comp.Alignment, err = c.MetaComponentAlignment(dsName, compName); err != nil {
				return nil, err
			}

			nAttrs, err := c.MetaNAttributes(dsName, compName)
			if err != nil {
				return nil, err
			}
			for k := int64(0); k < nAttrs; k++ {
				attrName, err := c.MetaAttributeName(dsName, compName, k)
				if err != nil {
					return nil, err
				}
				attr := AttributeMeta{Name: attrName}
				if attr.CType, err = c.MetaAttributeCType(dsName, compName, attrName); err != nil {
					return nil, err
				}
				if attr.Offset, err = c.MetaAttributeOffset(dsName, compName, attrName); err != nil {
					return nil, err
				}
				comp.Attributes = append(comp.Attributes, attr)
			}
			ds.Components = append(ds.Components, comp)
		}
		datasets = append(datasets, ds)
	}
	return datasets, nil
}
