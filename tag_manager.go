package artemis

// TagManager associates unique string tags with entities.
// It is a built-in manager: configure it like any other unit and wire it into
// systems through a *TagManager field.
type TagManager struct {
	Manager

	entitiesByTag map[string]Entity
	tagsByEntity  map[Entity]string
}

// Register tags e, replacing whatever entity held the tag before.
func (m *TagManager) Register(tag string, e Entity) {
	if m.entitiesByTag == nil {
		m.entitiesByTag = make(map[string]Entity)
		m.tagsByEntity = make(map[Entity]string)
	}

	if prev, ok := m.entitiesByTag[tag]; ok {
		delete(m.tagsByEntity, prev)
	}

	if prevTag, ok := m.tagsByEntity[e]; ok {
		delete(m.entitiesByTag, prevTag)
	}

	m.entitiesByTag[tag] = e
	m.tagsByEntity[e] = tag
}

// Unregister removes tag.
func (m *TagManager) Unregister(tag string) {
	e, ok := m.entitiesByTag[tag]
	if !ok {
		return
	}

	delete(m.entitiesByTag, tag)
	delete(m.tagsByEntity, e)
}

// Entity returns the entity holding tag.
func (m *TagManager) Entity(tag string) (Entity, bool) {
	e, ok := m.entitiesByTag[tag]
	return e, ok
}

// Tag returns the tag of e.
func (m *TagManager) Tag(e Entity) (string, bool) {
	tag, ok := m.tagsByEntity[e]
	return tag, ok
}

// IsRegistered reports whether tag is held by an entity.
func (m *TagManager) IsRegistered(tag string) bool {
	_, ok := m.entitiesByTag[tag]
	return ok
}

// Deleted drops the tag of a deleted entity.
func (m *TagManager) Deleted(e Entity) {
	if tag, ok := m.tagsByEntity[e]; ok {
		delete(m.entitiesByTag, tag)
		delete(m.tagsByEntity, e)
	}
}
