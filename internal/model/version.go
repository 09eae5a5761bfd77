package model

// Version is the released appmenu version, bumped at tag time.
const Version = "0.3.1"
