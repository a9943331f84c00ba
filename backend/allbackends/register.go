package allbackends
